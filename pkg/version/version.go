// Package version exposes build metadata injected at link time.
package version

// Overridden via -ldflags at build time.
var (
	gitCommit  = "unknown"
	gitVersion = "dev"
	buildDate  = "unknown"
)

type Info struct {
	GitVersion string `json:"gitVersion" yaml:"gitVersion"`
	GitCommit  string `json:"gitCommit" yaml:"gitCommit"`
	BuildDate  string `json:"buildDate" yaml:"buildDate"`
}

func Get() Info {
	return Info{
		GitVersion: gitVersion,
		GitCommit:  gitCommit,
		BuildDate:  buildDate,
	}
}

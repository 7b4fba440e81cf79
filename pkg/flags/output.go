package flags

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	puttingv1 "github.com/puttfit/puttfit/pkg/apis/putting/v1"
	"github.com/puttfit/puttfit/pkg/summary"
)

// OutputFlags selects how fit results are rendered.
type OutputFlags struct {
	Format string
}

func NewOutputFlags() *OutputFlags {
	return &OutputFlags{Format: "table"}
}

func (f *OutputFlags) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&f.Format, "output", "o", f.Format, "Output format; available options are 'table' and 'json'")
}

func (f *OutputFlags) Validate() error {
	switch f.Format {
	case "table", "json":
		return nil
	default:
		return errors.Errorf("invalid output format: %s", f.Format)
	}
}

// PrintResults renders the fits in the selected format. JSON output is a
// single document even for multiple fits.
func (f *OutputFlags) PrintResults(w io.Writer, results []*puttingv1.FitResult) error {
	if f.Format == "json" {
		if len(results) == 1 {
			return summary.WriteJSON(w, results[0])
		}
		return summary.WriteJSON(w, results)
	}
	for _, result := range results {
		if err := summary.PrintTable(w, result); err != nil {
			return err
		}
	}
	return nil
}

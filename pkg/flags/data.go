package flags

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	puttingv1 "github.com/puttfit/puttfit/pkg/apis/putting/v1"
	"github.com/puttfit/puttfit/pkg/dataloader"
	"github.com/puttfit/puttfit/pkg/dataloader/puttloader"
)

// DataFlags selects the putting table and course geometry a command fits
// against.
type DataFlags struct {
	Dataset      string
	DataFile     string
	GeometryFile string
}

func NewDataFlags() *DataFlags {
	return &DataFlags{
		Dataset: puttloader.DatasetClassic,
	}
}

func (f *DataFlags) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&f.Dataset, "dataset", f.Dataset,
		"Bundled dataset to fit (classic or tracking); ignored when --data-file is set")
	fs.StringVar(&f.DataFile, "data-file", f.DataFile,
		"Path to a putting table (two header lines, then x n y columns)")
	fs.StringVar(&f.GeometryFile, "geometry-config", f.GeometryFile,
		"YAML file overriding ball/hole radii, overshot and distance tolerance")
}

// GetDataSet loads the selected table, surfacing every row-level problem
// before failing.
func (f *DataFlags) GetDataSet() (*puttingv1.DataSet, error) {
	var loader dataloader.DataLoader
	if f.DataFile != "" {
		loader = puttloader.New(f.DataFile)
	} else {
		bundledLoader, err := puttloader.NewBundled(f.Dataset)
		if err != nil {
			return nil, err
		}
		loader = bundledLoader
	}

	loader.Load()
	if errs := loader.Errors(); len(errs) > 0 {
		for _, err := range errs {
			log.WithError(err).Error("data load problem")
		}
		return nil, errors.Errorf("dataset %q failed to load with %d errors", loader.Name(), len(errs))
	}
	return loader.Dataset(), nil
}

// GetGeometry returns the regulation geometry, with overrides from the
// config file when one is given.
func (f *DataFlags) GetGeometry() (puttingv1.Geometry, error) {
	geometry := puttingv1.DefaultGeometry()
	if f.GeometryFile == "" {
		return geometry, nil
	}

	raw, err := os.ReadFile(f.GeometryFile)
	if err != nil {
		return geometry, errors.Wrap(err, "could not read geometry config")
	}
	if err := yaml.Unmarshal(raw, &geometry); err != nil {
		return geometry, errors.Wrapf(err, "could not parse geometry config %s", f.GeometryFile)
	}
	if err := geometry.Validate(); err != nil {
		return geometry, errors.Wrapf(err, "invalid geometry in %s", f.GeometryFile)
	}
	return geometry, nil
}

// Package puttloader reads putting tables: whitespace-delimited files with a
// two-line header (a title line and the column names) followed by one row
// per distance bucket with columns x (feet), n (attempts), y (successes).
// Two datasets ship with the binary: the classic pro-tour counts and the
// newer shot-tracking table with much larger counts and longer putts.
package puttloader

import (
	"bufio"
	"embed"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	puttingv1 "github.com/puttfit/puttfit/pkg/apis/putting/v1"
)

//go:embed data/*.txt
var bundled embed.FS

// Bundled dataset names.
const (
	DatasetClassic  = "classic"
	DatasetTracking = "tracking"
)

var bundledFiles = map[string]string{
	DatasetClassic:  "data/golf.txt",
	DatasetTracking: "data/golf_tracking.txt",
}

const headerLines = 2

type PuttLoader struct {
	name    string
	open    func() (io.ReadCloser, error)
	dataset *puttingv1.DataSet
	errors  []error
}

// New returns a loader for a putting table on disk.
func New(path string) *PuttLoader {
	return &PuttLoader{
		name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

// NewBundled returns a loader for one of the datasets compiled into the
// binary.
func NewBundled(name string) (*PuttLoader, error) {
	file, ok := bundledFiles[name]
	if !ok {
		return nil, errors.Errorf("no bundled dataset %q, have %s and %s", name, DatasetClassic, DatasetTracking)
	}
	return &PuttLoader{
		name: name,
		open: func() (io.ReadCloser, error) {
			f, err := bundled.Open(file)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
	}, nil
}

func (l *PuttLoader) Name() string {
	return l.name
}

func (l *PuttLoader) Load() {
	r, err := l.open()
	if err != nil {
		l.errors = append(l.errors, errors.Wrapf(err, "could not open dataset %q", l.name))
		return
	}
	defer r.Close()

	dataset := &puttingv1.DataSet{Name: l.name}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if line <= headerLines {
			continue
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		point, err := parseRow(text)
		if err != nil {
			l.errors = append(l.errors, errors.Wrapf(err, "%s line %d", l.name, line))
			continue
		}
		if err := point.Validate(); err != nil {
			l.errors = append(l.errors, errors.Wrapf(err, "%s line %d", l.name, line))
			continue
		}
		dataset.Points = append(dataset.Points, point)
	}
	if err := scanner.Err(); err != nil {
		l.errors = append(l.errors, errors.Wrapf(err, "reading dataset %q", l.name))
		return
	}
	if len(dataset.Points) == 0 {
		l.errors = append(l.errors, errors.Errorf("dataset %q has no data rows", l.name))
		return
	}
	if len(l.errors) > 0 {
		return
	}

	log.WithFields(log.Fields{
		"dataset":  l.name,
		"rows":     len(dataset.Points),
		"attempts": dataset.TotalAttempts(),
	}).Info("loaded putting data")
	l.dataset = dataset
}

func (l *PuttLoader) Errors() []error {
	return l.errors
}

func (l *PuttLoader) Dataset() *puttingv1.DataSet {
	return l.dataset
}

func parseRow(text string) (puttingv1.DataPoint, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return puttingv1.DataPoint{}, errors.Errorf("expected 3 columns (x n y), got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return puttingv1.DataPoint{}, errors.Wrapf(err, "bad distance %q", fields[0])
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return puttingv1.DataPoint{}, errors.Wrapf(err, "bad attempt count %q", fields[1])
	}
	y, err := strconv.Atoi(fields[2])
	if err != nil {
		return puttingv1.DataPoint{}, errors.Wrapf(err, "bad success count %q", fields[2])
	}
	return puttingv1.DataPoint{Distance: x, Attempts: n, Successes: y}, nil
}

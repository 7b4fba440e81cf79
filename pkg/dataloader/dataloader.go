package dataloader

import (
	puttingv1 "github.com/puttfit/puttfit/pkg/apis/putting/v1"
)

type DataLoader interface {
	// Name returns a friendly name identifier
	Name() string

	// Load initiates the data loading process.
	Load()

	// Errors returns a slice of errors that occurred during the data loading process.
	Errors() []error

	// Dataset returns the loaded observations; nil until Load has run
	// without errors.
	Dataset() *puttingv1.DataSet
}

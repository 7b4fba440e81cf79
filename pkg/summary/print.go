package summary

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	puttingv1 "github.com/puttfit/puttfit/pkg/apis/putting/v1"
)

// PrintTable renders a fit result as an aligned text table, one row per
// parameter and derived quantity.
func PrintTable(w io.Writer, result *puttingv1.FitResult) error {
	fmt.Fprintf(w, "model %s on dataset %s (%d chains, %d iterations + %d warmup)\n",
		result.Model, result.Dataset, result.Chains, result.Iterations, result.Warmup)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "parameter\tmean\tsd\t2.5%\t50%\t97.5%\tR-hat\tESS")
	for _, s := range result.Parameters {
		printRow(tw, s)
	}
	for _, s := range result.Derived {
		printRow(tw, s)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "WARNING: %s\n", warning)
	}
	return nil
}

func printRow(w io.Writer, s puttingv1.ParameterSummary) {
	fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.3f\t%.0f\n",
		s.Name, s.Mean, s.SD, s.Q025, s.Median, s.Q975, s.RHat, s.ESS)
}

// WriteJSON renders one or more fit results as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BaSui01/flowlint/lint"
	"github.com/BaSui01/flowlint/types"
)

// renderText prints one block per workflow file with its diagnostics.
func renderText(w io.Writer, results []lint.Result, quiet bool) {
	for _, res := range results {
		switch {
		case res.Err != nil:
			fmt.Fprintf(w, "%s: failed: %v\n", res.Path, res.Err)
		case res.Skipped:
			if !quiet {
				fmt.Fprintf(w, "%s: skipped (no AI nodes)\n", res.Path)
			}
		case len(res.Diagnostics) == 0:
			if !quiet {
				fmt.Fprintf(w, "%s: ok\n", res.Path)
			}
		default:
			fmt.Fprintf(w, "%s:\n", res.Path)
			for _, d := range res.Diagnostics {
				if quiet && d.Severity != types.SeverityError {
					continue
				}
				if d.NodeName != "" {
					fmt.Fprintf(w, "  %-7s %-30s %s (node %q)\n", d.Severity, d.Code, d.Message, d.NodeName)
				} else {
					fmt.Fprintf(w, "  %-7s %-30s %s\n", d.Severity, d.Code, d.Message)
				}
			}
		}
	}
}

// jsonResult mirrors lint.Result with the error flattened to a string.
type jsonResult struct {
	Path        string            `json:"path"`
	RunID       string            `json:"run_id"`
	Workflow    string            `json:"workflow,omitempty"`
	Skipped     bool              `json:"skipped,omitempty"`
	Valid       bool              `json:"valid"`
	Diagnostics types.Diagnostics `json:"diagnostics,omitempty"`
	Error       string            `json:"error,omitempty"`
}

// renderJSON prints the batch as one JSON document.
func renderJSON(w io.Writer, results []lint.Result) {
	out := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{
			Path:        res.Path,
			RunID:       res.RunID,
			Workflow:    res.Workflow,
			Skipped:     res.Skipped,
			Valid:       res.Err == nil && !res.Diagnostics.HasErrors(),
			Diagnostics: res.Diagnostics,
		}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		out = append(out, jr)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}

package analyzers

import (
	"encoding/json"
	"io"
	"os"
)

// AnalysisReport collects findings and boundary errors for export.
type AnalysisReport struct {
	Findings []Finding `json:"findings"`
	Errors   []string  `json:"errors,omitempty"`
}

// Write writes the report as indented JSON.
func (r AnalysisReport) Write(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "	")
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}

// Save saves the report to the local filesystem.
func (r AnalysisReport) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := r.Write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Package output renders condition evaluation reports as aligned text
// tables or indented JSON.
package output

import (
	"encoding/json"
	"strconv"
)

// Format selects how a report is rendered.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// Formatter is implemented by report types that render both ways.
type Formatter interface {
	FormatText() string
	FormatJSON() ([]byte, error)
}

// FormatOutput renders f in the requested format. Text is the default for
// any unknown format value.
func FormatOutput(f Formatter, format Format) (string, error) {
	if format == FormatJSON {
		data, err := f.FormatJSON()
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return f.FormatText(), nil
}

// EvalEntry is a single evaluated condition in a report. Operand fields are
// display strings; the caller renders typed operands before building entries.
type EvalEntry struct {
	Kind     string `json:"kind"`
	Operator string `json:"op"`
	Left     string `json:"left"`
	Right    string `json:"right"`
	Matched  bool   `json:"matched"`
}

// EvalReport implements Formatter for condition evaluation results.
type EvalReport struct {
	Entries    []EvalEntry
	AllMatched bool
}

// NewEvalReport creates an EvalReport, computing the AllMatched aggregate.
func NewEvalReport(entries []EvalEntry) *EvalReport {
	all := true
	for _, e := range entries {
		if !e.Matched {
			all = false
			break
		}
	}
	return &EvalReport{Entries: entries, AllMatched: all}
}

// FormatText returns kubectl-style table output with aligned columns.
// Header: KIND, OPERATOR, LEFT, RIGHT, VERDICT
func (r *EvalReport) FormatText() string {
	if len(r.Entries) == 0 {
		return ""
	}

	tw := NewTableWriter()
	tw.Header("KIND", "OPERATOR", "LEFT", "RIGHT", "VERDICT")

	for _, e := range r.Entries {
		verdict := "NO MATCH"
		if e.Matched {
			verdict = "MATCH"
		}
		tw.Row(e.Kind, e.Operator, e.Left, e.Right, verdict)
	}

	return tw.String()
}

// FormatJSON returns indented JSON with a flat results array and the
// AllMatched aggregate.
func (r *EvalReport) FormatJSON() ([]byte, error) {
	jr := jsonReport{
		Results:    r.Entries,
		AllMatched: r.AllMatched,
	}
	if jr.Results == nil {
		jr.Results = []EvalEntry{}
	}
	return json.MarshalIndent(jr, "", "  ")
}

// jsonReport is the JSON output structure.
type jsonReport struct {
	Results    []EvalEntry `json:"results"`
	AllMatched bool        `json:"all_matched"`
}

// WindowReport implements Formatter for resolved relative-time windows.
type WindowReport struct {
	Value         string `json:"value"`
	ReferenceDate string `json:"reference_date"`
	Reference     int64  `json:"reference_timestamp"`
	Compare       int64  `json:"compare_timestamp"`
}

// FormatText returns a two-column table of the resolved timestamps.
func (w *WindowReport) FormatText() string {
	tw := NewTableWriter()
	tw.Header("REFERENCE", "COMPARE")
	tw.Row(strconv.FormatInt(w.Reference, 10), strconv.FormatInt(w.Compare, 10))
	return tw.String()
}

// FormatJSON returns indented JSON output.
func (w *WindowReport) FormatJSON() ([]byte, error) {
	return json.MarshalIndent(w, "", "  ")
}

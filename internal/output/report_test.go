package output

import (
	"encoding/json"
	"strings"
	"testing"
)

func sampleEntries() []EvalEntry {
	return []EvalEntry{
		{Kind: "number", Operator: ">=", Left: "5", Right: "3", Matched: true},
		{Kind: "string", Operator: "contains", Left: "xyz", Right: "hello", Matched: false},
	}
}

func TestEvalReportFormatText(t *testing.T) {
	report := NewEvalReport(sampleEntries())
	text := report.FormatText()

	for _, want := range []string{"KIND", "OPERATOR", "LEFT", "RIGHT", "VERDICT", "MATCH", "NO MATCH"} {
		if !strings.Contains(text, want) {
			t.Errorf("text output should contain %q, got:\n%s", want, text)
		}
	}

	lines := strings.Split(text, "\n")
	if len(lines) != 3 {
		t.Errorf("got %d lines, want 3 (header + 2 rows):\n%s", len(lines), text)
	}
}

func TestEvalReportFormatTextEmpty(t *testing.T) {
	report := NewEvalReport(nil)
	if got := report.FormatText(); got != "" {
		t.Errorf("empty report text = %q, want empty string", got)
	}
	if !report.AllMatched {
		t.Error("empty report should vacuously report AllMatched")
	}
}

func TestEvalReportFormatJSON(t *testing.T) {
	report := NewEvalReport(sampleEntries())
	data, err := report.FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON error: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if parsed["all_matched"] != false {
		t.Errorf("all_matched = %v, want false", parsed["all_matched"])
	}

	results, ok := parsed["results"].([]interface{})
	if !ok {
		t.Fatal("results is not an array")
	}
	if len(results) != 2 {
		t.Errorf("len(results) = %d, want 2", len(results))
	}

	first, ok := results[0].(map[string]interface{})
	if !ok {
		t.Fatal("result entry is not an object")
	}
	if first["kind"] != "number" || first["matched"] != true {
		t.Errorf("first result = %v", first)
	}
}

func TestEvalReportAllMatched(t *testing.T) {
	report := NewEvalReport([]EvalEntry{
		{Kind: "number", Operator: "==", Left: "1", Right: "1", Matched: true},
	})
	if !report.AllMatched {
		t.Error("AllMatched = false, want true")
	}
}

func TestWindowReportFormats(t *testing.T) {
	report := &WindowReport{
		Value:         "7days",
		ReferenceDate: "2024-01-05",
		Reference:     1704412800,
		Compare:       1705017600,
	}

	text := report.FormatText()
	for _, want := range []string{"REFERENCE", "COMPARE", "1704412800", "1705017600"} {
		if !strings.Contains(text, want) {
			t.Errorf("text output should contain %q, got:\n%s", want, text)
		}
	}

	data, err := report.FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON error: %v", err)
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if parsed["value"] != "7days" {
		t.Errorf("value = %v, want 7days", parsed["value"])
	}
	if parsed["reference_timestamp"] != float64(1704412800) {
		t.Errorf("reference_timestamp = %v", parsed["reference_timestamp"])
	}
}

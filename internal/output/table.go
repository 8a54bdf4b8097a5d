package output

import (
	"bytes"
	"strings"
	"text/tabwriter"
)

// columnPadding separates report columns. Three spaces keeps verdicts
// readable next to long operand strings without wasting width.
const columnPadding = 3

// TableWriter accumulates header and data rows and renders them as
// space-aligned columns.
type TableWriter struct {
	rows [][]string
}

// NewTableWriter creates an empty TableWriter.
func NewTableWriter() *TableWriter {
	return &TableWriter{}
}

// Header appends the header row with the given column names.
func (t *TableWriter) Header(columns ...string) {
	t.rows = append(t.rows, columns)
}

// Row appends a data row with the given values.
func (t *TableWriter) Row(values ...string) {
	t.rows = append(t.rows, values)
}

// String renders the accumulated rows with aligned columns.
// An empty table renders as the empty string.
func (t *TableWriter) String() string {
	if len(t.rows) == 0 {
		return ""
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, columnPadding, ' ', 0)
	for _, row := range t.rows {
		_, _ = w.Write([]byte(strings.Join(row, "\t") + "\n"))
	}
	_ = w.Flush()

	return strings.TrimSuffix(buf.String(), "\n")
}

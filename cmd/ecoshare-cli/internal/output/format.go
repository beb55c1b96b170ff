// Package output prints CLI listings as a table or as JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Listing is a titled set of rows with named columns.
type Listing struct {
	Kind    string
	Columns []string
	Rows    [][]string
}

// Write renders l in the given format.
func Write(w io.Writer, format string, l Listing) error {
	switch format {
	case FormatTable, "":
		return writeTable(w, l)
	case FormatJSON:
		return writeJSON(w, l)
	default:
		return fmt.Errorf("unsupported output format %q, use %q or %q", format, FormatTable, FormatJSON)
	}
}

func writeTable(w io.Writer, l Listing) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := make([]string, len(l.Columns))
	rule := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		header[i] = strings.ToUpper(c)
		rule[i] = strings.Repeat("-", len(c))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, strings.Join(rule, "\t"))

	if len(l.Rows) == 0 {
		fmt.Fprintf(tw, "No %s found\n", l.Kind)
	}
	for _, row := range l.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, l Listing) error {
	items := make([]map[string]string, 0, len(l.Rows))
	for _, row := range l.Rows {
		item := make(map[string]string, len(l.Columns))
		for i, c := range l.Columns {
			if i < len(row) {
				item[c] = row[i]
			}
		}
		items = append(items, item)
	}

	out := map[string]any{
		l.Kind:  items,
		"count": len(items),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

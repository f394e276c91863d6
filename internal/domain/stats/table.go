// Package stats models the tabular result sets returned by the stats provider.
// Column labels follow the provider's schema (e.g. "PTS", "GAME_DATE") and are
// treated as a fixed external contract.
package stats

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Table is a named result set: a header row plus value rows.
type Table struct {
	Name    string
	Headers []string
	Rows    []Row

	index map[string]int
}

// Row is a single record of a Table. Values are positional; use the accessor
// methods to read them by column label.
type Row struct {
	table  *Table
	values []any
}

// NewTable builds a table from headers and raw positional rows.
func NewTable(name string, headers []string, raw [][]any) *Table {
	t := &Table{
		Name:    name,
		Headers: append([]string(nil), headers...),
		index:   make(map[string]int, len(headers)),
	}
	for i, h := range t.Headers {
		t.index[h] = i
	}
	t.Rows = make([]Row, 0, len(raw))
	for _, values := range raw {
		t.Rows = append(t.Rows, Row{table: t, values: values})
	}
	return t
}

// Len reports the number of rows; a nil table has none.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return t.Len() == 0
}

// HasColumn reports whether the table carries the given column label.
func (t *Table) HasColumn(col string) bool {
	if t == nil {
		return false
	}
	_, ok := t.index[col]
	return ok
}

// Filter returns a new table holding the rows that satisfy keep, in order.
func (t *Table) Filter(keep func(Row) bool) *Table {
	if t == nil {
		return &Table{}
	}
	out := &Table{Name: t.Name, Headers: t.Headers, index: t.index}
	for _, r := range t.Rows {
		if keep(r) {
			out.Rows = append(out.Rows, Row{table: out, values: r.values})
		}
	}
	return out
}

// Value returns the raw value for col, or nil when the column is missing.
func (r Row) Value(col string) any {
	if r.table == nil {
		return nil
	}
	i, ok := r.table.index[col]
	if !ok || i >= len(r.values) {
		return nil
	}
	return r.values[i]
}

// IsNull reports whether col is missing or JSON null.
func (r Row) IsNull(col string) bool {
	return r.Value(col) == nil
}

// String returns col rendered as text. Whole numbers print without a decimal point.
func (r Row) String(col string) string {
	switch v := r.Value(col).(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Float returns col as a float64; non-numeric values read as 0.
func (r Row) Float(col string) float64 {
	switch v := r.Value(col).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Int returns col truncated to an int.
func (r Row) Int(col string) int {
	return int(r.Float(col))
}

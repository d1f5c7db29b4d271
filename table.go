package xer

// Table is one table section of an export: its name, its column headers, and
// its data rows in file order.
type Table struct {
	Name   string
	Header []string
	Rows   []Row
}

// Row holds the field values of one %R line. A row may be narrower or wider
// than its table's header: exports omit trailing empty columns, so the header
// length is an upper bound on meaningful positions, not the row's width.
type Row []string

// Column returns the position of the named header column, or -1 if the table
// has no such column.
func (t *Table) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Field returns the value at position i, or "" when the row is too short to
// reach it.
func (r Row) Field(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

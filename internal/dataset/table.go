package dataset

import "fmt"

// MissingColumnError is returned when an analysis requires a column the table does not have
type MissingColumnError struct {
	Column Column
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column %q", string(e.Column))
}

// Table is an immutable set of records plus the columns present in the source.
// Column presence is decided once, when the table is built.
type Table struct {
	records []Record
	present map[Column]bool
	order   []Column
}

// NewTable builds a table. Unknown columns are ignored; records are not copied.
func NewTable(columns []Column, records []Record) *Table {
	present := make(map[Column]bool, len(columns))
	var order []Column
	for _, c := range columns {
		if !c.Known() || present[c] {
			continue
		}
		present[c] = true
		order = append(order, c)
	}
	return &Table{records: records, present: present, order: order}
}

// Len returns the number of records
func (t *Table) Len() int { return len(t.records) }

// Records returns the underlying records. Callers must not modify them.
func (t *Table) Records() []Record { return t.records }

// Columns returns the present columns in source order
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.order))
	copy(out, t.order)
	return out
}

// Has reports whether the column is present
func (t *Table) Has(c Column) bool { return t.present[c] }

// Requirements declares the columns an analyzer needs
type Requirements struct {
	Required []Column
	Optional []Column
}

// View is a typed, possibly partial projection of a table limited to the
// columns an analyzer declared.
type View struct {
	table   *Table
	allowed map[Column]bool
}

// View resolves req against the table. It fails with *MissingColumnError when a
// required column is absent; absent optional columns are simply not visible.
func (t *Table) View(req Requirements) (*View, error) {
	allowed := make(map[Column]bool)
	for _, c := range req.Required {
		if !t.present[c] {
			return nil, &MissingColumnError{Column: c}
		}
		allowed[c] = true
	}
	for _, c := range req.Optional {
		if t.present[c] {
			allowed[c] = true
		}
	}
	return &View{table: t, allowed: allowed}, nil
}

// Len returns the number of rows
func (v *View) Len() int { return v.table.Len() }

// Has reports whether the column is visible in this view
func (v *View) Has(c Column) bool { return v.allowed[c] }

// Present returns the visible columns out of cols, preserving order
func (v *View) Present(cols []Column) []Column {
	var out []Column
	for _, c := range cols {
		if v.allowed[c] {
			out = append(out, c)
		}
	}
	return out
}

// Strings returns one nullable value per row, or nil when the column is not visible
func (v *View) Strings(c Column) []*string {
	if !v.allowed[c] {
		return nil
	}
	out := make([]*string, len(v.table.records))
	for i, r := range v.table.records {
		out[i] = r.String(c)
	}
	return out
}

// Floats returns one nullable value per row, or nil when the column is not visible
func (v *View) Floats(c Column) []*float64 {
	if !v.allowed[c] {
		return nil
	}
	out := make([]*float64, len(v.table.records))
	for i, r := range v.table.records {
		out[i] = r.Float(c)
	}
	return out
}

// NonNull returns the non-null values of a numeric column in row order
func (v *View) NonNull(c Column) []float64 {
	var out []float64
	for _, p := range v.Floats(c) {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

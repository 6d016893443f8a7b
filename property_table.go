package model

// PropertyColumn is one binary column of per-feature metadata: a property
// name and its packed values for every feature in the table.
type PropertyColumn struct {
	// Name is the property name, e.g. "height" or "classification".
	Name string

	// Data is the packed binary value buffer for all features.
	Data []byte
}

// PropertyTable is a per-feature metadata table: a fixed number of
// features, each with a value in every column. Tables are CPU-resident;
// their byte length feeds [Statistics.PropertyTablesByteLength] directly,
// with no identity tracking, so the owner must add each table exactly
// once per generation.
type PropertyTable struct {
	name    string
	count   int
	columns []PropertyColumn

	// byteLength is the summed column data size, fixed at construction.
	byteLength int64
}

// NewPropertyTable creates a property table with the given feature count
// and columns. The table's byte length is the sum of its column sizes.
func NewPropertyTable(name string, count int, columns ...PropertyColumn) *PropertyTable {
	t := &PropertyTable{
		name:    name,
		count:   count,
		columns: columns,
	}
	for _, c := range columns {
		t.byteLength += int64(len(c.Data))
	}
	return t
}

// Name returns the table name.
func (t *PropertyTable) Name() string { return t.name }

// Count returns the number of features in the table.
func (t *PropertyTable) Count() int { return t.count }

// Columns returns the table's property columns.
func (t *PropertyTable) Columns() []PropertyColumn { return t.columns }

// ByteLength returns the total binary size of the table's columns.
func (t *PropertyTable) ByteLength() int64 { return t.byteLength }

package model

import "testing"

func TestNewPropertyTable(t *testing.T) {
	table := NewPropertyTable("buildings", 50,
		PropertyColumn{Name: "height", Data: make([]byte, 200)},
		PropertyColumn{Name: "name", Data: make([]byte, 800)},
	)

	if table.Name() != "buildings" {
		t.Errorf("Name() = %q, want buildings", table.Name())
	}
	if table.Count() != 50 {
		t.Errorf("Count() = %d, want 50", table.Count())
	}
	if len(table.Columns()) != 2 {
		t.Errorf("Columns() length = %d, want 2", len(table.Columns()))
	}
	if table.ByteLength() != 1000 {
		t.Errorf("ByteLength() = %d, want 1000", table.ByteLength())
	}
}

func TestNewPropertyTableEmpty(t *testing.T) {
	table := NewPropertyTable("empty", 0)
	if table.ByteLength() != 0 {
		t.Errorf("ByteLength() = %d, want 0", table.ByteLength())
	}
	if len(table.Columns()) != 0 {
		t.Errorf("Columns() length = %d, want 0", len(table.Columns()))
	}
}

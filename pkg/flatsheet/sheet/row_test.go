package sheet

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRowParsesFields(t *testing.T) {
	row := NewRow([]string{"apple", "3", "true", ""}, 7, 1)

	if row.ID() != 7 {
		t.Errorf("ID() = %d, expected 7", row.ID())
	}
	if row.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", row.Len())
	}

	want := []Data{Text("apple"), Integer(3), Boolean(true), {}}
	got := make([]Data, 0, row.Len())
	for _, c := range row.Cells() {
		got = append(got, c.Data())
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(Data{})); diff != "" {
		t.Errorf("cell data mismatch (-want +got):\n%s", diff)
	}

	for i, c := range row.Cells() {
		if c.ID() != i {
			t.Errorf("cell %d has id %d, expected %d", i, c.ID(), i)
		}
	}
}

func TestRowAppendAssignsNextID(t *testing.T) {
	row := NewRow([]string{"1", "2"}, 0, 0)
	row.Append(Text("x"))
	row.Append(Data{})

	if row.Len() != 4 {
		t.Fatalf("Len() = %d, expected 4", row.Len())
	}
	c, ok := row.Cell(3)
	if !ok {
		t.Fatal("expected a cell at index 3")
	}
	if c.ID() != 3 {
		t.Errorf("appended cell id = %d, expected 3", c.ID())
	}
}

func TestRowPrimaryKey(t *testing.T) {
	row := NewRow([]string{"a", "b", "c"}, 0, 1)

	c, ok := row.PrimaryCell()
	if !ok {
		t.Fatal("expected a primary cell")
	}
	if c.Data() != Text("b") {
		t.Errorf("primary cell = %v, expected b", c.Data())
	}

	if err := row.SetPrimaryKey(2); err != nil {
		t.Fatalf("SetPrimaryKey(2) failed: %v", err)
	}
	if row.PrimaryKey() != 2 {
		t.Errorf("PrimaryKey() = %d, expected 2", row.PrimaryKey())
	}

	err := row.SetPrimaryKey(3)
	if !errors.Is(err, ErrInvalidPrimaryKey) {
		t.Errorf("SetPrimaryKey(3) error = %v, expected ErrInvalidPrimaryKey", err)
	}
	if row.PrimaryKey() != 2 {
		t.Error("failed SetPrimaryKey must leave the key untouched")
	}
}

func TestRowCellByID(t *testing.T) {
	row := NewRow([]string{"x", "y"}, 0, 0)

	c, ok := row.CellByID(1)
	if !ok || c.Data() != Text("y") {
		t.Errorf("CellByID(1) = %v, %v, expected y cell", c.Data(), ok)
	}
	if _, ok := row.CellByID(9); ok {
		t.Error("expected no cell with id 9")
	}
}

func TestRowPad(t *testing.T) {
	row := NewRow([]string{"1"}, 0, 0)
	row.pad(3)

	if row.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", row.Len())
	}
	for i := 1; i < 3; i++ {
		c, _ := row.Cell(i)
		if !c.Data().IsNone() {
			t.Errorf("padded cell %d holds %v, expected None", i, c.Data())
		}
		if c.ID() != i {
			t.Errorf("padded cell %d has id %d, expected %d", i, c.ID(), i)
		}
	}
}

func TestCellSetData(t *testing.T) {
	c := NewCell(0, Integer(1))
	c.SetData(Text("replaced"))
	if c.Data() != Text("replaced") {
		t.Errorf("Data() = %v, expected replaced", c.Data())
	}
}

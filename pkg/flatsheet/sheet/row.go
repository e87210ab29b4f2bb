package sheet

import "slices"

// Cell is a single value slot within a row. Cell ids are unique within the
// owning row and never reused during the sheet's lifetime.
type Cell struct {
	id   int
	data Data
}

// NewCell creates a cell with an explicit id.
func NewCell(id int, data Data) Cell {
	return Cell{id: id, data: data}
}

// ID returns the cell id.
func (c Cell) ID() int {
	return c.id
}

// Data returns the value held by the cell.
func (c Cell) Data() Data {
	return c.data
}

// SetData replaces the value held by the cell.
func (c *Cell) SetData(data Data) {
	c.data = data
}

func (c Cell) validateType(kind ColumnType) error {
	if kind.Compatible(c.data) {
		return nil
	}
	return newError(ErrInvalidColumnType, "expected %v type but had %v type for cell with id %d", kind, c.data.Kind(), c.id)
}

// ColumnHeader is the label and declared type for one column.
type ColumnHeader struct {
	Label string
	Kind  ColumnType
}

// Compatible reports whether a value may be stored under this header.
func (h ColumnHeader) Compatible(d Data) bool {
	return h.Kind.Compatible(d)
}

// Row is an ordered sequence of cells with its own monotonic cell id counter
// and a primary cell index.
type Row struct {
	id        int
	cells     []Cell
	primary   int
	idCounter int
}

// NewRow builds a row from raw record fields. Each field is parsed into a
// Data value and assigned the next cell id.
func NewRow(fields []string, id, primary int) Row {
	cells := make([]Cell, len(fields))
	for i, field := range fields {
		cells[i] = NewCell(i, ParseData(field))
	}
	return Row{id: id, cells: cells, primary: primary, idCounter: len(cells)}
}

// NewRowFromData builds a row from already-typed values.
func NewRowFromData(values []Data, id, primary int) Row {
	cells := make([]Cell, len(values))
	for i, v := range values {
		cells[i] = NewCell(i, v)
	}
	return Row{id: id, cells: cells, primary: primary, idCounter: len(cells)}
}

// ID returns the row id.
func (r *Row) ID() int {
	return r.id
}

// Len returns the number of cells in the row.
func (r *Row) Len() int {
	return len(r.cells)
}

// Append adds a cell holding data, assigning it the next cell id.
func (r *Row) Append(data Data) {
	r.cells = append(r.cells, NewCell(r.idCounter, data))
	r.idCounter++
}

// Cells returns a copy of the row's cells in column order.
func (r *Row) Cells() []Cell {
	return slices.Clone(r.cells)
}

// Cell returns the cell at the given column index.
func (r *Row) Cell(index int) (Cell, bool) {
	if index < 0 || index >= len(r.cells) {
		return Cell{}, false
	}
	return r.cells[index], true
}

// CellByID returns the cell carrying the given id.
func (r *Row) CellByID(id int) (Cell, bool) {
	for _, c := range r.cells {
		if c.id == id {
			return c, true
		}
	}
	return Cell{}, false
}

// SetCellData replaces the value of the cell at the given column index.
func (r *Row) SetCellData(index int, data Data) error {
	if index < 0 || index >= len(r.cells) {
		return newError(ErrInvalidColumnLength, "tried to set cell %d on a row of length %d", index, len(r.cells))
	}
	r.cells[index].data = data
	return nil
}

// PrimaryKey returns the index of the row's primary cell.
func (r *Row) PrimaryKey() int {
	return r.primary
}

// PrimaryCell returns the row's designated primary cell.
func (r *Row) PrimaryCell() (Cell, bool) {
	return r.Cell(r.primary)
}

// SetPrimaryKey designates the primary cell. The key must lie within the
// row's cells.
func (r *Row) SetPrimaryKey(key int) error {
	if !r.isKeyValid(key) {
		return newError(ErrInvalidPrimaryKey, "tried to set primary key %d on a row of length %d", key, len(r.cells))
	}
	r.primary = key
	return nil
}

func (r *Row) isKeyValid(key int) bool {
	return key >= 0 && key < len(r.cells)
}

func (r *Row) validatePrimaryKey() error {
	if !r.isKeyValid(r.primary) {
		return newError(ErrInvalidPrimaryKey, "primary key is invalid for row with id %d", r.id)
	}
	return nil
}

func (r *Row) validateAll(headers []ColumnHeader) error {
	if len(r.cells) != len(headers) {
		return newError(ErrInvalidColumnLength, "row with id %d has %d cells, expected %d", r.id, len(r.cells), len(headers))
	}
	for i, c := range r.cells {
		if !headers[i].Compatible(c.data) {
			return newError(ErrInvalidColumnType, "expected %v type but had %v type for cell id %d in row id %d", headers[i].Kind, c.data.Kind(), c.id, r.id)
		}
	}
	return nil
}

func (r *Row) validateCol(header ColumnHeader, col int) error {
	c, ok := r.Cell(col)
	if !ok {
		return newError(ErrInvalidColumnLength, "tried to validate out of bounds column %d in row id %d", col, r.id)
	}
	if !header.Compatible(c.data) {
		return newError(ErrInvalidColumnType, "expected %v type but had %v type for cell id %d in row id %d", header.Kind, c.data.Kind(), c.id, r.id)
	}
	return nil
}

// clone returns a copy of the row with its own cell storage.
func (r *Row) clone() Row {
	return Row{id: r.id, cells: slices.Clone(r.cells), primary: r.primary, idCounter: r.idCounter}
}

// pad fills the row with empty cells up to the given length.
func (r *Row) pad(length int) {
	for len(r.cells) < length {
		r.Append(Data{})
	}
}

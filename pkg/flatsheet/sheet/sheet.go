package sheet

import (
	"slices"
	"sort"
)

// Sheet is the validated tabular model: rows of typed columns under header
// labels. Sheets are created through format builders; every documented
// mutation either succeeds with all invariants held or leaves the sheet in
// its prior state.
//
// A sheet holds these invariants after every mutation:
//
//  1. no two rows share an id,
//  2. every row has the same length,
//  3. the header count tracks the longest row,
//  4. every cell is compatible with its column's declared type.
//
// Sheets are not safe for concurrent mutation; callers needing shared access
// must synchronize externally.
type Sheet struct {
	headers   []ColumnHeader
	rows      []Row
	idCounter int
	primary   int
	flexible  bool
}

// Headers returns a copy of the column headers in column order.
func (s *Sheet) Headers() []ColumnHeader {
	return slices.Clone(s.headers)
}

// Rows returns a copy of the sheet's rows in insertion order. The copies own
// their cell storage, so mutating them does not touch the sheet; cell values
// change through SetCellData.
func (s *Sheet) Rows() []Row {
	out := make([]Row, len(s.rows))
	for i := range s.rows {
		out[i] = s.rows[i].clone()
	}
	return out
}

// RowCount returns the number of rows.
func (s *Sheet) RowCount() int {
	return len(s.rows)
}

// RowByIndex returns a copy of the row at the given position.
func (s *Sheet) RowByIndex(index int) (*Row, bool) {
	if index < 0 || index >= len(s.rows) {
		return nil, false
	}
	row := s.rows[index].clone()
	return &row, true
}

// RowByID returns a copy of the row carrying the given id.
func (s *Sheet) RowByID(id int) (*Row, bool) {
	for i := range s.rows {
		if s.rows[i].id == id {
			row := s.rows[i].clone()
			return &row, true
		}
	}
	return nil, false
}

// SetCellData replaces the value of the cell at the given row index and
// column. The value must be compatible with the column's declared type; an
// incompatible value fails with ErrInvalidColumnType and the sheet is left
// untouched.
func (s *Sheet) SetCellData(row, col int, data Data) error {
	if row < 0 || row >= len(s.rows) {
		return newError(ErrInvalidColumnLength, "tried to access out of range row %d", row)
	}
	if col < 0 || col >= len(s.headers) {
		return newError(ErrInvalidColumnLength, "tried to access out of range column %d", col)
	}
	if !s.headers[col].Compatible(data) {
		return newError(ErrInvalidColumnType, "expected %v type but had %v type for column %d", s.headers[col].Kind, data.Kind(), col)
	}
	return s.rows[row].SetCellData(col, data)
}

// PrimaryColumn returns the index of the sheet's primary column.
func (s *Sheet) PrimaryColumn() int {
	return s.primary
}

// ColumnType returns the declared type of the given column.
func (s *Sheet) ColumnType(col int) (ColumnType, error) {
	if col < 0 || col >= len(s.headers) {
		return TypeNone, newError(ErrInvalidColumnLength, "tried to access out of range column %d", col)
	}
	return s.headers[col].Kind, nil
}

// SetPrimaryColumn designates the sheet's primary column and propagates it to
// every row.
func (s *Sheet) SetPrimaryColumn(col int) error {
	if col < 0 || col >= len(s.headers) {
		return newError(ErrInvalidPrimaryKey, "tried to set primary column %d on a sheet with %d columns", col, len(s.headers))
	}
	for i := range s.rows {
		if !s.rows[i].isKeyValid(col) {
			return newError(ErrInvalidPrimaryKey, "primary column %d is out of range of row with id %d", col, s.rows[i].id)
		}
	}
	s.primary = col
	for i := range s.rows {
		s.rows[i].primary = col
	}
	return nil
}

// AddRow appends a row, assigning it a fresh id from the sheet's counter.
// The row length must match the sheet's columns unless the sheet was built in
// flexible mode, in which case short rows are padded with empty cells and
// longer rows grow the headers (padding every existing row to match).
func (s *Sheet) AddRow(row Row) error {
	width := len(s.headers)
	if row.Len() != width && !s.flexible {
		return newError(ErrInvalidColumnLength, "row has %d cells, expected %d", row.Len(), width)
	}
	if row.Len() < width {
		row.pad(width)
	}
	for i, c := range row.cells {
		if i < width && !s.headers[i].Compatible(c.data) {
			return newError(ErrInvalidColumnType, "expected %v type but had %v type for cell id %d", s.headers[i].Kind, c.data.Kind(), c.id)
		}
	}
	row.primary = s.primary
	if err := row.validatePrimaryKey(); err != nil {
		return err
	}

	if row.Len() > width {
		for i := width; i < row.Len(); i++ {
			s.headers = append(s.headers, ColumnHeader{})
		}
		for i := range s.rows {
			s.rows[i].pad(row.Len())
		}
	}
	row.id = s.idCounter
	s.idCounter++
	s.rows = append(s.rows, row)
	return nil
}

// Validate checks all sheet invariants. It can be expensive on large sheets.
func (s *Sheet) Validate() error {
	if err := s.validatePrimary(); err != nil {
		return err
	}
	for i := range s.rows {
		if err := s.rows[i].validateAll(s.headers); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sheet) validatePrimary() error {
	n := len(s.headers)
	pk := s.primary
	if pk < 0 || pk > n || (pk == n && pk != 0) {
		return newError(ErrInvalidPrimaryKey, "primary column %d out of range of %d columns", pk, n)
	}
	for i := range s.rows {
		if err := s.rows[i].validatePrimaryKey(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sheet) validateCol(col int) error {
	if col < 0 || col >= len(s.headers) {
		return newError(ErrInvalidColumnLength, "tried to access out of range column %d", col)
	}
	for i := range s.rows {
		if err := s.rows[i].validateCol(s.headers[col], col); err != nil {
			return err
		}
	}
	return nil
}

// SortByColumn reorders rows ascending by the values in the given column.
// The column must hold one uniform value type (empty cells aside); a column
// mixing variants fails with ErrInvalidColumnSort and the order is untouched.
func (s *Sheet) SortByColumn(col int) error {
	return s.sortRows(col, false)
}

// SortByColumnDesc reorders rows descending by the values in the given
// column, under the same preconditions as SortByColumn.
func (s *Sheet) SortByColumnDesc(col int) error {
	return s.sortRows(col, true)
}

func (s *Sheet) sortRows(col int, desc bool) error {
	if col < 0 || col >= len(s.headers) {
		return newError(ErrInvalidColumnLength, "column %d out of range", col)
	}
	if err := s.checkSortable(col); err != nil {
		return err
	}
	sort.SliceStable(s.rows, func(i, j int) bool {
		a := s.rows[i].cells[col].data
		b := s.rows[j].cells[col].data
		if desc {
			return b.Compare(a) < 0
		}
		return a.Compare(b) < 0
	})
	return nil
}

// checkSortable verifies the column holds one uniform value type: either the
// declared type is respected by every cell, or, under a TypeNone column, all
// non-empty cells share a single variant.
func (s *Sheet) checkSortable(col int) error {
	declared := s.headers[col].Kind
	seen := TypeNone
	for i := range s.rows {
		c, ok := s.rows[i].Cell(col)
		if !ok {
			return newError(ErrInvalidColumnSort, "row with id %d has no cell in column %d", s.rows[i].id, col)
		}
		kind := c.data.Kind()
		if kind == TypeNone {
			continue
		}
		if declared != TypeNone && kind != declared {
			return newError(ErrInvalidColumnSort, "expected %v type but had %v type in column %d, row id %d", declared, kind, col, s.rows[i].id)
		}
		if seen == TypeNone {
			seen = kind
		} else if seen != kind {
			return newError(ErrInvalidColumnSort, "tried to sort column %d holding both %v and %v values", col, seen, kind)
		}
	}
	return nil
}

// inferColumnTypes assigns each header the single variant shared by all of
// the column's non-empty cells, or TypeNone when the column mixes variants.
func (s *Sheet) inferColumnTypes() {
	for col := range s.headers {
		kind := TypeNone
		uniform := true
		for i := range s.rows {
			c, ok := s.rows[i].Cell(col)
			if !ok {
				continue
			}
			k := c.data.Kind()
			if k == TypeNone {
				continue
			}
			if kind == TypeNone {
				kind = k
			} else if kind != k {
				uniform = false
				break
			}
		}
		if !uniform {
			kind = TypeNone
		}
		s.headers[col].Kind = kind
	}
}

// Transpose returns a new sheet with rows and columns swapped: the first
// column becomes the header labels and the old header labels become the
// first column. initialHeader, when non-empty, replaces the label of the
// top-left header. Column types on the result are re-inferred and all
// invariants re-validated; a sheet that cannot produce a rectangular result
// fails with ErrTranspose.
func (s *Sheet) Transpose(initialHeader string) (*Sheet, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	width := len(s.headers)
	if width == 0 {
		return nil, newError(ErrTranspose, "cannot transpose a sheet with no columns")
	}
	depth := len(s.rows) + 1

	headers := make([]ColumnHeader, 0, depth)
	first := s.headers[0]
	if initialHeader != "" {
		first.Label = initialHeader
	}
	headers = append(headers, first)
	for i := range s.rows {
		c, ok := s.rows[i].Cell(0)
		if !ok {
			return nil, newError(ErrTranspose, "row with id %d has no leading cell", s.rows[i].id)
		}
		label := ""
		if !c.data.IsNone() {
			label = c.data.String()
		}
		headers = append(headers, ColumnHeader{Label: label})
	}

	rows := make([]Row, 0, width-1)
	for col := 1; col < width; col++ {
		cells := make([]Cell, 0, depth)
		cells = append(cells, NewCell(0, ParseData(s.headers[col].Label)))
		for i := range s.rows {
			c, ok := s.rows[i].Cell(col)
			if !ok {
				return nil, newError(ErrTranspose, "row with id %d has no cell in column %d", s.rows[i].id, col)
			}
			cells = append(cells, NewCell(i+1, c.data))
		}
		rows = append(rows, Row{id: col - 1, cells: cells, primary: 0, idCounter: depth})
	}

	out := &Sheet{
		headers:   headers,
		rows:      rows,
		idCounter: width - 1,
		primary:   0,
		flexible:  s.flexible,
	}
	out.inferColumnTypes()
	if err := out.Validate(); err != nil {
		return nil, &Error{Kind: ErrTranspose, Context: "transposed sheet failed validation", Err: err}
	}
	return out, nil
}

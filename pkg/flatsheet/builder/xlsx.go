package builder

import (
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/flatsheet-go/pkg/flatsheet/sheet"
)

// XLSXConfig configures parsing of a spreadsheet file into a sheet. It
// exposes the same option surface and Build contract as the delimited-text
// Config, minus the delimiter.
type XLSXConfig struct {
	path      string
	sheetName string
	primary   int
	trim      bool
	flexible  bool
	labels    sheet.HeaderLabelStrategy
	types     sheet.TypesStrategy
	null      string
}

// NewXLSXConfig returns a config for the workbook at path. Unless a sheet is
// selected with Sheet, the workbook's active sheet is decoded.
func NewXLSXConfig(path string) *XLSXConfig {
	return &XLSXConfig{
		path: path,
		null: DefaultNullString,
	}
}

// Sheet selects the worksheet to decode by name.
func (c *XLSXConfig) Sheet(name string) *XLSXConfig {
	c.sheetName = name
	return c
}

// Primary sets the primary column index.
func (c *XLSXConfig) Primary(primary int) *XLSXConfig {
	c.primary = primary
	return c
}

// Trim strips leading and trailing whitespace from every field and header
// label.
func (c *XLSXConfig) Trim(trim bool) *XLSXConfig {
	c.trim = trim
	return c
}

// Flexible pads short rows with empty cells instead of failing on ragged
// input. Spreadsheet rows usually come back ragged (trailing empty cells are
// elided), so most workbooks want this on.
func (c *XLSXConfig) Flexible(flexible bool) *XLSXConfig {
	c.flexible = flexible
	return c
}

// Labels sets how column labels are derived.
func (c *XLSXConfig) Labels(s sheet.HeaderLabelStrategy) *XLSXConfig {
	c.labels = s
	return c
}

// Types sets how column types are derived.
func (c *XLSXConfig) Types(s sheet.TypesStrategy) *XLSXConfig {
	c.types = s
	return c
}

// NullString sets the field value to be decoded as an empty cell.
func (c *XLSXConfig) NullString(null string) *XLSXConfig {
	c.null = null
	return c
}

// Build opens the workbook, decodes the selected worksheet row by row, and
// runs the shared assembly pipeline. Workbook failures wrap ErrCSVReader as
// the uniform reader-failure kind.
func (c *XLSXConfig) Build() (*sheet.Sheet, error) {
	f, err := excelize.OpenFile(c.path)
	if err != nil {
		return nil, sheet.WrapReader(err, c.path)
	}
	defer f.Close()

	name := c.sheetName
	if name == "" {
		name = f.GetSheetName(f.GetActiveSheetIndex())
	}

	records, err := f.GetRows(name)
	if err != nil {
		return nil, sheet.WrapReader(err, name)
	}

	return assemble(records, c.primary, c.trim, c.flexible, c.labels, c.types, c.null)
}

package builder

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/flatsheet-go/pkg/flatsheet/sheet"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "fruit")
	f.SetCellValue(sheetName, "B1", "count")
	f.SetCellValue(sheetName, "A2", "apple")
	f.SetCellValue(sheetName, "B2", 3)
	f.SetCellValue(sheetName, "A3", "banana")
	f.SetCellValue(sheetName, "B3", 5)

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
	return path
}

func TestXLSXBuild(t *testing.T) {
	path := writeWorkbook(t)

	sh, err := NewXLSXConfig(path).
		Flexible(true).
		Labels(sheet.ReadLabels()).
		Types(sheet.InferTypes()).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	headers := sh.Headers()
	if len(headers) != 2 {
		t.Fatalf("header count = %d, expected 2", len(headers))
	}
	if headers[0].Label != "fruit" || headers[1].Label != "count" {
		t.Errorf("labels = %q, %q, expected fruit, count", headers[0].Label, headers[1].Label)
	}
	if headers[1].Kind != sheet.TypeInteger {
		t.Errorf("count column kind = %v, expected integer", headers[1].Kind)
	}

	if sh.RowCount() != 2 {
		t.Fatalf("RowCount() = %d, expected 2", sh.RowCount())
	}
	row, _ := sh.RowByIndex(1)
	c, _ := row.Cell(1)
	if c.Data() != sheet.Integer(5) {
		t.Errorf("cell = %v, expected Integer(5)", c.Data())
	}
}

func TestXLSXBuildNamedSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if _, err := f.NewSheet("Extra"); err != nil {
		t.Fatalf("failed to add sheet: %v", err)
	}
	f.SetCellValue("Extra", "A1", "only")

	path := filepath.Join(t.TempDir(), "named.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}

	sh, err := NewXLSXConfig(path).Sheet("Extra").Flexible(true).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	row, ok := sh.RowByIndex(0)
	if !ok {
		t.Fatal("expected one row")
	}
	c, _ := row.Cell(0)
	if c.Data() != sheet.Text("only") {
		t.Errorf("cell = %v, expected only", c.Data())
	}
}

func TestXLSXBuildMissingFile(t *testing.T) {
	_, err := NewXLSXConfig(filepath.Join(t.TempDir(), "nope.xlsx")).Build()
	if !errors.Is(err, sheet.ErrCSVReader) {
		t.Errorf("error = %v, expected ErrCSVReader", err)
	}
}

func TestXLSXBuildUnknownSheet(t *testing.T) {
	path := writeWorkbook(t)

	_, err := NewXLSXConfig(path).Sheet("Missing").Build()
	if !errors.Is(err, sheet.ErrCSVReader) {
		t.Errorf("error = %v, expected ErrCSVReader", err)
	}
}

// Package output serializes sheets for CLI and downstream consumption.
package output

import (
	"encoding/json"

	"github.com/ukaji3/flatsheet-go/pkg/flatsheet/sheet"
)

// Header is the serialized form of a column header.
type Header struct {
	// Label is the column label.
	Label string `json:"label"`
	// Kind is the column type name.
	Kind string `json:"kind"`
}

// Document is the serialized form of a sheet.
type Document struct {
	// Headers lists the columns in order.
	Headers []Header `json:"headers"`
	// Rows holds the cell values row by row; empty cells render as null.
	Rows [][]sheet.Data `json:"rows"`
	// Primary is the primary column index.
	Primary int `json:"primary"`
}

// NewDocument flattens a sheet into its serializable form.
func NewDocument(sh *sheet.Sheet) Document {
	headers := sh.Headers()
	doc := Document{
		Headers: make([]Header, len(headers)),
		Rows:    make([][]sheet.Data, 0, sh.RowCount()),
		Primary: sh.PrimaryColumn(),
	}
	for i, hdr := range headers {
		doc.Headers[i] = Header{Label: hdr.Label, Kind: hdr.Kind.String()}
	}
	for _, row := range sh.Rows() {
		cells := row.Cells()
		values := make([]sheet.Data, len(cells))
		for i, c := range cells {
			values[i] = c.Data()
		}
		doc.Rows = append(doc.Rows, values)
	}
	return doc
}

// ToJSON renders the sheet as JSON, optionally indented.
func ToJSON(sh *sheet.Sheet, pretty bool) ([]byte, error) {
	doc := NewDocument(sh)
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

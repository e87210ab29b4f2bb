// Package builder constructs sheets from delimited text, spreadsheet, and
// JSON sources. Every format exposes a config holding the source path and
// the documented parsing options, and builds through the same contract.
package builder

import (
	"strings"

	"github.com/ukaji3/flatsheet-go/pkg/flatsheet/sheet"
)

// Builder is the single construction contract every format config
// implements. Build runs one synchronous pass over the source and returns a
// validated sheet or an error from the sheet package's taxonomy.
type Builder interface {
	Build() (*sheet.Sheet, error)
}

// DefaultNullString is the field value decoded as an empty cell.
const DefaultNullString = "<null>"

// assemble turns decoded string records into a sheet: trimming and
// null-string mapping happen here, then the header record is split off and
// the rest is handed to the sheet assembly pipeline.
func assemble(records [][]string, primary int, trim, flexible bool, labels sheet.HeaderLabelStrategy, types sheet.TypesStrategy, null string) (*sheet.Sheet, error) {
	if trim {
		for _, rec := range records {
			for i, field := range rec {
				rec[i] = strings.TrimSpace(field)
			}
		}
	}

	var headerRecord []string
	if labels.ReadsLabels() && len(records) > 0 {
		headerRecord = records[0]
		records = records[1:]
	}

	data := make([][]sheet.Data, len(records))
	for i, rec := range records {
		row := make([]sheet.Data, len(rec))
		for j, field := range rec {
			if null != "" && field == null {
				row[j] = sheet.None()
				continue
			}
			row[j] = sheet.ParseData(field)
		}
		data[i] = row
	}

	return sheet.New(sheet.Definition{
		Records:      data,
		HeaderRecord: headerRecord,
		Primary:      primary,
		Flexible:     flexible,
		Labels:       labels,
		Types:        types,
	})
}

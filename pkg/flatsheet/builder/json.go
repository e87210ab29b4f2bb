package builder

import (
	"encoding/json"
	"errors"
	"math"
	"os"
	"sort"

	"github.com/ukaji3/flatsheet-go/pkg/flatsheet/sheet"
)

// JSONConfig configures parsing of a JSON document into a sheet. The document
// must be an array of arrays or an array of flat objects. For objects, the
// sorted keys of the first object fix the column order and, when labels are
// read, become the header labels. For arrays, reading labels consumes the
// first record as the header, just like delimited text.
type JSONConfig struct {
	path     string
	primary  int
	flexible bool
	labels   sheet.HeaderLabelStrategy
	types    sheet.TypesStrategy
}

// NewJSONConfig returns a config for the document at path.
func NewJSONConfig(path string) *JSONConfig {
	return &JSONConfig{path: path}
}

// Primary sets the primary column index.
func (c *JSONConfig) Primary(primary int) *JSONConfig {
	c.primary = primary
	return c
}

// Flexible pads short rows with empty cells instead of failing on ragged
// input.
func (c *JSONConfig) Flexible(flexible bool) *JSONConfig {
	c.flexible = flexible
	return c
}

// Labels sets how column labels are derived.
func (c *JSONConfig) Labels(s sheet.HeaderLabelStrategy) *JSONConfig {
	c.labels = s
	return c
}

// Types sets how column types are derived.
func (c *JSONConfig) Types(s sheet.TypesStrategy) *JSONConfig {
	c.types = s
	return c
}

// Build decodes the document and runs the shared assembly pipeline. Read and
// decode failures wrap ErrCSVReader as the uniform reader-failure kind.
func (c *JSONConfig) Build() (*sheet.Sheet, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return nil, sheet.WrapReader(err, c.path)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, sheet.WrapReader(err, c.path)
	}

	records, headerRecord, err := decodeJSONRecords(elements)
	if err != nil {
		return nil, sheet.WrapReader(err, c.path)
	}

	labels := c.labels
	if !labels.ReadsLabels() {
		headerRecord = nil
	} else if headerRecord == nil && len(records) > 0 {
		// Array-of-arrays input has no keys, so the first record is the
		// header, just like delimited text.
		headerRecord = make([]string, len(records[0]))
		for i, d := range records[0] {
			headerRecord[i] = d.String()
		}
		records = records[1:]
	}

	return sheet.New(sheet.Definition{
		Records:      records,
		HeaderRecord: headerRecord,
		Primary:      c.primary,
		Flexible:     c.flexible,
		Labels:       labels,
		Types:        c.types,
	})
}

// decodeJSONRecords turns the document's elements into typed records. For
// object elements it also returns the column keys as a header record.
func decodeJSONRecords(elements []json.RawMessage) ([][]sheet.Data, []string, error) {
	if len(elements) == 0 {
		return nil, nil, nil
	}

	var keys []string
	records := make([][]sheet.Data, 0, len(elements))
	for _, el := range elements {
		var arr []any
		if err := json.Unmarshal(el, &arr); err == nil {
			row := make([]sheet.Data, len(arr))
			for i, v := range arr {
				row[i] = dataFromJSONValue(v)
			}
			records = append(records, row)
			continue
		}

		var obj map[string]any
		if err := json.Unmarshal(el, &obj); err != nil {
			return nil, nil, errors.New("json record must be an array or an object")
		}
		if keys == nil {
			keys = make([]string, 0, len(obj))
			for k := range obj {
				keys = append(keys, k)
			}
			sort.Strings(keys)
		}
		row := make([]sheet.Data, len(keys))
		for i, k := range keys {
			row[i] = dataFromJSONValue(obj[k])
		}
		records = append(records, row)
	}

	return records, keys, nil
}

// dataFromJSONValue maps a decoded JSON value to a Data variant. Whole
// numbers become Integer or Number depending on their magnitude; any other
// number becomes Float.
func dataFromJSONValue(v any) sheet.Data {
	switch val := v.(type) {
	case nil:
		return sheet.None()
	case bool:
		return sheet.Boolean(val)
	case string:
		if val == "" {
			return sheet.None()
		}
		return sheet.Text(val)
	case float64:
		if val == math.Trunc(val) && !math.IsInf(val, 0) {
			if val >= math.MinInt32 && val <= math.MaxInt32 {
				return sheet.Integer(int32(val))
			}
			// float64(MaxInt64) rounds up to 1<<63, so the upper bound must
			// be exclusive or int64(val) overflows at exactly 1<<63.
			if val >= math.MinInt64 && val < math.MaxInt64 {
				return sheet.Number(int64(val))
			}
		}
		return sheet.Float(float32(val))
	default:
		return sheet.None()
	}
}

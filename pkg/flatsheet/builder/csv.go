package builder

import (
	"encoding/csv"
	"os"

	"github.com/ukaji3/flatsheet-go/pkg/flatsheet/sheet"
)

// Config configures parsing of a delimited text file into a sheet. There is
// no usable zero value: a source path is required, so configs start from
// NewConfig. Option methods return the config for chaining.
type Config struct {
	path      string
	primary   int
	trim      bool
	flexible  bool
	labels    sheet.HeaderLabelStrategy
	types     sheet.TypesStrategy
	delimiter byte
	null      string
}

// NewConfig returns a config for the file at path with the defaults: primary
// column 0, no trimming, strict row lengths, no labels, untyped columns,
// comma delimiter, and "<null>" as the null field value.
func NewConfig(path string) *Config {
	return &Config{
		path:      path,
		delimiter: ',',
		null:      DefaultNullString,
	}
}

// Primary sets the primary column index.
func (c *Config) Primary(primary int) *Config {
	c.primary = primary
	return c
}

// Trim strips leading and trailing whitespace from every field and header
// label.
func (c *Config) Trim(trim bool) *Config {
	c.trim = trim
	return c
}

// Flexible pads short rows with empty cells instead of failing on ragged
// input.
func (c *Config) Flexible(flexible bool) *Config {
	c.flexible = flexible
	return c
}

// Labels sets how column labels are derived.
func (c *Config) Labels(s sheet.HeaderLabelStrategy) *Config {
	c.labels = s
	return c
}

// Types sets how column types are derived.
func (c *Config) Types(s sheet.TypesStrategy) *Config {
	c.types = s
	return c
}

// Delimiter sets the field separator. A tab parses TSV input.
func (c *Config) Delimiter(delimiter byte) *Config {
	c.delimiter = delimiter
	return c
}

// NullString sets the field value to be decoded as an empty cell. An empty
// string disables null mapping.
func (c *Config) NullString(null string) *Config {
	c.null = null
	return c
}

// Build opens and decodes the file, resolves the configured strategies, and
// returns the validated sheet. Decoder and I/O failures wrap ErrCSVReader;
// ragged input under strict mode fails with ErrInvalidColumnLength.
func (c *Config) Build() (*sheet.Sheet, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, sheet.WrapReader(err, c.path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = rune(c.delimiter)
	// Raggedness is the assembly step's concern, where it reports the right
	// failure kind.
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, sheet.WrapReader(err, c.path)
	}

	return assemble(records, c.primary, c.trim, c.flexible, c.labels, c.types, c.null)
}

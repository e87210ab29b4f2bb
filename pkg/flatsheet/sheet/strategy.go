package sheet

import "slices"

type labelMode int

const (
	labelNone labelMode = iota
	labelRead
	labelProvided
)

// HeaderLabelStrategy determines how a builder derives column labels. The
// zero value synthesizes empty labels for every column.
type HeaderLabelStrategy struct {
	mode   labelMode
	labels []string
}

// NoLabels synthesizes empty-string labels for every column.
func NoLabels() HeaderLabelStrategy {
	return HeaderLabelStrategy{}
}

// ReadLabels consumes the first decoded record as the column labels.
func ReadLabels() HeaderLabelStrategy {
	return HeaderLabelStrategy{mode: labelRead}
}

// ProvidedLabels uses the given labels, independent of file content.
func ProvidedLabels(labels ...string) HeaderLabelStrategy {
	return HeaderLabelStrategy{mode: labelProvided, labels: slices.Clone(labels)}
}

// ReadsLabels reports whether the first record should be consumed as labels.
func (s HeaderLabelStrategy) ReadsLabels() bool {
	return s.mode == labelRead
}

func (s HeaderLabelStrategy) String() string {
	switch s.mode {
	case labelRead:
		return "read header labels"
	case labelProvided:
		return "header labels provided"
	default:
		return "no header labels"
	}
}

type typesMode int

const (
	typesNone typesMode = iota
	typesInfer
	typesProvided
)

// TypesStrategy determines how column types are derived. The zero value
// leaves every column untyped.
type TypesStrategy struct {
	mode  typesMode
	types []ColumnType
}

// TypesNone types every column as TypeNone.
func TypesNone() TypesStrategy {
	return TypesStrategy{}
}

// InferTypes scans each column and assigns the single variant shared by all
// of its non-empty cells, or TypeNone when the column is mixed.
func InferTypes() TypesStrategy {
	return TypesStrategy{mode: typesInfer}
}

// ProvidedTypes uses the given column types directly.
func ProvidedTypes(types ...ColumnType) TypesStrategy {
	return TypesStrategy{mode: typesProvided, types: slices.Clone(types)}
}

func (s TypesStrategy) String() string {
	switch s.mode {
	case typesInfer:
		return "infer types"
	case typesProvided:
		return "types provided"
	default:
		return "no types"
	}
}

type lineLabelMode int

const (
	lineLabelNone lineLabelMode = iota
	lineLabelFromCell
	lineLabelProvided
)

// LineLabelStrategy determines how the lines of a graph converted from a
// sheet are labeled. The zero value leaves every line unlabeled.
type LineLabelStrategy struct {
	mode   lineLabelMode
	column int
	labels []string
}

// NoLineLabels leaves every line unlabeled.
func NoLineLabels() LineLabelStrategy {
	return LineLabelStrategy{}
}

// LineLabelsFromCell labels each line with the display value of the cell in
// the given column. The column's values are not plotted.
func LineLabelsFromCell(column int) LineLabelStrategy {
	return LineLabelStrategy{mode: lineLabelFromCell, column: column}
}

// LineLabelsProvided labels lines in order from the given list. Excess labels
// are ignored; lines with no matching label stay unlabeled.
func LineLabelsProvided(labels ...string) LineLabelStrategy {
	return LineLabelStrategy{mode: lineLabelProvided, labels: slices.Clone(labels)}
}

func (s LineLabelStrategy) String() string {
	switch s.mode {
	case lineLabelFromCell:
		return "label using a cell"
	case lineLabelProvided:
		return "labels provided"
	default:
		return "no line labels"
	}
}

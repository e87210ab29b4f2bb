// Package sheet implements the tabular data model: rows of uniquely
// identified cells under typed, labeled columns.
package sheet

import (
	"cmp"
	"encoding/json"
	"fmt"
	"strconv"
)

// NoneString is the display form of an empty Data value.
const NoneString = "<None>"

// ColumnType tags the kind of value a column holds. The zero value, TypeNone,
// marks a column with no uniform type and is compatible with every Data
// variant. The numeric order of the tags fixes the cross-variant ordering of
// Data values.
type ColumnType int

const (
	// TypeNone is a non-uniform type column.
	TypeNone ColumnType = iota
	// TypeBoolean is a boolean column.
	TypeBoolean
	// TypeInteger is a 32-bit signed integer column.
	TypeInteger
	// TypeFloat is a 32-bit floating point column.
	TypeFloat
	// TypeNumber is a wide (64-bit) signed integer column.
	TypeNumber
	// TypeText is a text column.
	TypeText
)

func (t ColumnType) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeNumber:
		return "number"
	case TypeText:
		return "text"
	default:
		return "none"
	}
}

// ParseColumnType maps a type name back to its tag.
func ParseColumnType(name string) (ColumnType, error) {
	switch name {
	case "none":
		return TypeNone, nil
	case "boolean":
		return TypeBoolean, nil
	case "integer":
		return TypeInteger, nil
	case "float":
		return TypeFloat, nil
	case "number":
		return TypeNumber, nil
	case "text":
		return TypeText, nil
	}
	return TypeNone, fmt.Errorf("unknown column type %q", name)
}

// Compatible reports whether a value may be stored in a column of this type.
// TypeNone accepts every variant; any other type accepts only its mirror
// variant or an empty cell.
func (t ColumnType) Compatible(d Data) bool {
	if t == TypeNone || d.kind == TypeNone {
		return true
	}
	return t == d.kind
}

// ColumnTypeOf maps a value to its mirror column type.
func ColumnTypeOf(d Data) ColumnType {
	return d.kind
}

// Data is the tagged value held by a cell: Boolean, Integer, Float, Number,
// Text, or None. The zero value is None. Data is comparable and may be used
// as a map key.
type Data struct {
	kind    ColumnType
	boolean bool
	integer int32
	float   float32
	number  int64
	text    string
}

// None returns the empty value.
func None() Data {
	return Data{}
}

// Boolean wraps a bool.
func Boolean(v bool) Data {
	return Data{kind: TypeBoolean, boolean: v}
}

// Integer wraps a 32-bit signed integer.
func Integer(v int32) Data {
	return Data{kind: TypeInteger, integer: v}
}

// Float wraps a 32-bit float.
func Float(v float32) Data {
	return Data{kind: TypeFloat, float: v}
}

// Number wraps a wide signed integer.
func Number(v int64) Data {
	return Data{kind: TypeNumber, number: v}
}

// Text wraps a string.
func Text(v string) Data {
	return Data{kind: TypeText, text: v}
}

// ParseData converts a raw field into a Data value. It is total: every string
// maps to some variant. Empty fields and the literal "<None>" decode to None;
// otherwise the first successful parse wins, trying 32-bit integer, boolean
// literal, 32-bit float, then wide integer; anything left over is Text.
func ParseData(field string) Data {
	if field == "" || field == NoneString {
		return Data{}
	}
	if i, err := strconv.ParseInt(field, 10, 32); err == nil {
		return Integer(int32(i))
	}
	switch field {
	case "true":
		return Boolean(true)
	case "false":
		return Boolean(false)
	}
	if f, err := strconv.ParseFloat(field, 32); err == nil {
		return Float(float32(f))
	}
	if n, err := strconv.ParseInt(field, 10, 64); err == nil {
		return Number(n)
	}
	return Text(field)
}

// Kind returns the variant tag.
func (d Data) Kind() ColumnType {
	return d.kind
}

// IsNone reports whether the value is empty.
func (d Data) IsNone() bool {
	return d.kind == TypeNone
}

// IsNegative reports whether the value is a negative numeric.
func (d Data) IsNegative() bool {
	switch d.kind {
	case TypeInteger:
		return d.integer < 0
	case TypeFloat:
		return d.float < 0
	case TypeNumber:
		return d.number < 0
	default:
		return false
	}
}

// Value returns the native payload: bool, int32, float32, int64, string, or
// nil for None.
func (d Data) Value() any {
	switch d.kind {
	case TypeBoolean:
		return d.boolean
	case TypeInteger:
		return d.integer
	case TypeFloat:
		return d.float
	case TypeNumber:
		return d.number
	case TypeText:
		return d.text
	default:
		return nil
	}
}

func (d Data) String() string {
	switch d.kind {
	case TypeBoolean:
		return strconv.FormatBool(d.boolean)
	case TypeInteger:
		return strconv.FormatInt(int64(d.integer), 10)
	case TypeFloat:
		return strconv.FormatFloat(float64(d.float), 'g', -1, 32)
	case TypeNumber:
		return strconv.FormatInt(d.number, 10)
	case TypeText:
		return d.text
	default:
		return NoneString
	}
}

// Compare totally orders two values. Values of different variants order by
// variant tag: None < Boolean < Integer < Float < Number < Text. Within a
// variant the natural value order applies; a Float NaN sorts before every
// other Float.
func (d Data) Compare(other Data) int {
	if d.kind != other.kind {
		return cmp.Compare(d.kind, other.kind)
	}
	switch d.kind {
	case TypeBoolean:
		return cmp.Compare(boolRank(d.boolean), boolRank(other.boolean))
	case TypeInteger:
		return cmp.Compare(d.integer, other.integer)
	case TypeFloat:
		return cmp.Compare(d.float, other.float)
	case TypeNumber:
		return cmp.Compare(d.number, other.number)
	case TypeText:
		return cmp.Compare(d.text, other.text)
	default:
		return 0
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// MarshalJSON renders the native payload; None renders as null.
func (d Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Value())
}

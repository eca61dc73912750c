package structure

import "strings"

// TypeTag enumerates every kind of value a style variable can hold.
type TypeTag int

const (
	TagInvalid TypeTag = iota
	TagInt
	TagDouble
	TagPixels
	TagString
	TagColor
	TagPoint
	TagSize
	TagCursor
	TagAlign
	TagMargins
	TagFont
	TagIcon
	TagStruct
)

func (t TypeTag) String() string {
	switch t {
	case TagInt:
		return "int"
	case TagDouble:
		return "double"
	case TagPixels:
		return "pixels"
	case TagString:
		return "string"
	case TagColor:
		return "color"
	case TagPoint:
		return "point"
	case TagSize:
		return "size"
	case TagCursor:
		return "cursor"
	case TagAlign:
		return "align"
	case TagMargins:
		return "margins"
	case TagFont:
		return "font"
	case TagIcon:
		return "icon"
	case TagStruct:
		return "struct"
	}

	return "invalid"
}

// FullName is a qualified name, a path of scope segments.
type FullName []string

// Back returns the last segment, the unqualified name.
func (n FullName) Back() string {
	if len(n) == 0 {
		return ""
	}

	return n[len(n)-1]
}

func (n FullName) String() string {
	return strings.Join(n, ".")
}

// Equal reports whether two qualified names are segment-wise identical.
func (n FullName) Equal(other FullName) bool {
	if len(n) != len(other) {
		return false
	}
	for i := range n {
		if n[i] != other[i] {
			return false
		}
	}

	return true
}

// Type is a value type: a tag, plus the struct type name for TagStruct.
type Type struct {
	Name FullName
	Tag  TypeTag
}

// Color is four independent byte channels. Fallback optionally names
// another color variable used for inheritance in palette modules.
type Color struct {
	Fallback string
	Red      uint8
	Green    uint8
	Blue     uint8
	Alpha    uint8
}

// Point is a pair of pixel quantities.
type Point struct {
	X int
	Y int
}

// Size is a width/height pair of pixel quantities.
type Size struct {
	Width  int
	Height int
}

// Margins is four pixel quantities, one per edge.
type Margins struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Font style flags.
const (
	FontFlagBold = 1 << iota
	FontFlagItalic
	FontFlagUnderline
	FontFlagSemibold
)

// Font is a pixel size, a flags bitmask, and an optional family name.
type Font struct {
	Family string
	Size   int
	Flags  int
}

// IconPart is one layer of an icon: a mask file spec (a path, possibly
// with "-modifier" suffixes, or a "size://W,H" pseudo-path), a color,
// and an offset. Parts are composited in declaration order.
type IconPart struct {
	Filename string
	Color    Value
	Offset   Value
}

// Icon is an ordered sequence of parts.
type Icon struct {
	Parts []IconPart
}

// Field is one field of a struct type's declared shape.
type Field struct {
	Name FullName
	Type Type
}

// FieldValue is one field of a struct-typed value.
type FieldValue struct {
	Field    Field
	Variable Variable
}

// Variable binds a qualified name to a value.
type Variable struct {
	Name  FullName
	Value Value
}

// Struct declares a user-defined record shape.
type Struct struct {
	Name   FullName
	Fields []Field
}

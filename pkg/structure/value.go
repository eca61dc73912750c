package structure

// Value is a tagged union over every TypeTag, or an alias naming another
// declared value whose value it borrows at generation time. A Value is
// either a direct literal of its tag or an alias, never both.
type Value struct {
	typ    Type
	copyOf FullName

	intv     int
	doublev  float64
	stringv  string
	colorv   Color
	pointv   Point
	sizev    Size
	marginsv Margins
	fontv    Font
	iconv    Icon
	fieldsv  []FieldValue
}

// CopyOfValue creates an alias of the named declared value.
func CopyOfValue(typ Type, name FullName) Value {
	return Value{typ: typ, copyOf: name}
}

// IntValue creates an Int or Pixels value.
func IntValue(tag TypeTag, v int) Value {
	return Value{typ: Type{Tag: tag}, intv: v}
}

// DoubleValue creates a Double value.
func DoubleValue(v float64) Value {
	return Value{typ: Type{Tag: TagDouble}, doublev: v}
}

// StringValue creates a String, Cursor, or Align value.
func StringValue(tag TypeTag, v string) Value {
	return Value{typ: Type{Tag: tag}, stringv: v}
}

// ColorValue creates a Color value.
func ColorValue(v Color) Value {
	return Value{typ: Type{Tag: TagColor}, colorv: v}
}

// PointValue creates a Point value.
func PointValue(v Point) Value {
	return Value{typ: Type{Tag: TagPoint}, pointv: v}
}

// SizeValue creates a Size value.
func SizeValue(v Size) Value {
	return Value{typ: Type{Tag: TagSize}, sizev: v}
}

// MarginsValue creates a Margins value.
func MarginsValue(v Margins) Value {
	return Value{typ: Type{Tag: TagMargins}, marginsv: v}
}

// FontValue creates a Font value.
func FontValue(v Font) Value {
	return Value{typ: Type{Tag: TagFont}, fontv: v}
}

// IconValue creates an Icon value.
func IconValue(v Icon) Value {
	return Value{typ: Type{Tag: TagIcon}, iconv: v}
}

// StructValue creates a value of a user-defined struct type.
func StructValue(name FullName, fields []FieldValue) Value {
	return Value{typ: Type{Tag: TagStruct, Name: name}, fieldsv: fields}
}

// Type returns the value's type.
func (v Value) Type() Type {
	return v.typ
}

// CopyOf returns the aliased name, or an empty name for a direct literal.
func (v Value) CopyOf() FullName {
	return v.copyOf
}

// IsCopy reports whether the value is an alias.
func (v Value) IsCopy() bool {
	return len(v.copyOf) != 0
}

func (v Value) Int() int         { return v.intv }
func (v Value) Double() float64  { return v.doublev }
func (v Value) String() string   { return v.stringv }
func (v Value) Color() Color     { return v.colorv }
func (v Value) Point() Point     { return v.pointv }
func (v Value) Size() Size       { return v.sizev }
func (v Value) Margins() Margins { return v.marginsv }
func (v Value) Font() Font       { return v.fontv }
func (v Value) Icon() Icon       { return v.iconv }

// Fields returns the field values of a struct-typed value, or nil if the
// value is not a struct or its field list is absent.
func (v Value) Fields() []FieldValue {
	if v.typ.Tag != TagStruct {
		return nil
	}

	return v.fieldsv
}

// Clone returns a deep copy. Icon parts and struct fields own nested
// values, so they are copied recursively; leaf kinds have value semantics
// already.
func (v Value) Clone() Value {
	result := v
	if len(v.iconv.Parts) != 0 {
		parts := make([]IconPart, len(v.iconv.Parts))
		for i, part := range v.iconv.Parts {
			parts[i] = IconPart{
				Filename: part.Filename,
				Color:    part.Color.Clone(),
				Offset:   part.Offset.Clone(),
			}
		}
		result.iconv = Icon{Parts: parts}
	}
	if len(v.fieldsv) != 0 {
		fields := make([]FieldValue, len(v.fieldsv))
		for i, field := range v.fieldsv {
			fields[i] = field
			fields[i].Variable.Value = field.Variable.Value.Clone()
		}
		result.fieldsv = fields
	}

	return result
}

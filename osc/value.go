package osc

import (
	"bytes"

	"golang.org/x/exp/constraints"
)

// Value is a single OSC argument. The set of implementations is closed:
// String, Int32, Float32 and Blob. The type tag of a Value is a property of
// its type and is never stored alongside it.
type Value interface {
	TypeTag() TypeTag
	isValue()
}

// String is an OSC-string argument ('s').
type String string

// Int32 is a 32-bit big-endian two's complement argument ('i').
type Int32 int32

// Float32 is a 32-bit IEEE 754 argument ('f').
type Float32 float32

// Blob is a length prefixed run of arbitrary bytes ('b').
type Blob []byte

// Verify that all argument kinds implement Value.
var (
	_ Value = String("")
	_ Value = Int32(0)
	_ Value = Float32(0)
	_ Value = Blob(nil)
)

func (String) TypeTag() TypeTag  { return TypeString }
func (Int32) TypeTag() TypeTag   { return TypeInt32 }
func (Float32) TypeTag() TypeTag { return TypeFloat32 }
func (Blob) TypeTag() TypeTag    { return TypeBlob }

func (String) isValue()  {}
func (Int32) isValue()   {}
func (Float32) isValue() {}
func (Blob) isValue()    {}

// Int converts any Go integer to an Int32 argument. Values outside the int32
// range are truncated.
func Int[T constraints.Integer](i T) Int32 {
	return Int32(i)
}

// Float converts any Go float to a Float32 argument.
func Float[T constraints.Float](f T) Float32 {
	return Float32(f)
}

// valueEqual compares two arguments. Floats are compared by value, so NaN is
// never equal to itself.
func valueEqual(a, b Value) bool {
	switch a := a.(type) {
	case Blob:
		bb, ok := b.(Blob)
		return ok && bytes.Equal(a, bb)
	default:
		return a == b
	}
}

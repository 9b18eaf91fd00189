// Package scalar defines the closed set of fixed-width numeric types the
// dataview accessors can move through a byte buffer, and the pure
// value <-> bytes conversion for each of them.
//
// The set is closed on purpose: each member has a byte width known at
// compile time and a total encoding - every value has a byte form and
// every byte pattern of the right width decodes to a value. Callers cannot
// plug in their own types.
package scalar

import (
	"encoding/binary"
	"math"

	"github.com/x448/float16"
)

// Float16 is an IEEE 754 binary16 value, 2 bytes wide. Conversions to and
// from float32 live on the type itself (see x448/float16).
type Float16 = float16.Float16

// Value is the set of scalars with a fixed byte width and a total
// encode/decode pair. Exact types only - named wrappers are deliberately
// excluded so dispatch stays a closed table.
type Value interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | Float16 |
		Int128 | Uint128
}

// Size returns the encoded width in bytes of T. It is a constant per
// instantiation.
func Size[T Value]() int {
	var v T
	switch any(v).(type) {
	case int8, uint8:
		return 1
	case int16, uint16, Float16:
		return 2
	case int32, uint32, float32:
		return 4
	case int64, uint64, float64:
		return 8
	default: // Int128, Uint128
		return 16
	}
}

// Put encodes v into b[:Size[T]()] under the byte order o.
// b must be at least Size[T]() bytes long.
func Put[T Value](o binary.ByteOrder, b []byte, v T) {
	switch x := any(v).(type) {
	case int8:
		b[0] = byte(x)
	case uint8:
		b[0] = x
	case int16:
		o.PutUint16(b, uint16(x))
	case uint16:
		o.PutUint16(b, x)
	case Float16:
		o.PutUint16(b, uint16(x))
	case int32:
		o.PutUint32(b, uint32(x))
	case uint32:
		o.PutUint32(b, x)
	case float32:
		o.PutUint32(b, math.Float32bits(x))
	case int64:
		o.PutUint64(b, uint64(x))
	case uint64:
		o.PutUint64(b, x)
	case float64:
		o.PutUint64(b, math.Float64bits(x))
	case Int128:
		putUint128(o, b, Uint128{Hi: uint64(x.Hi), Lo: x.Lo})
	case Uint128:
		putUint128(o, b, x)
	}
}

// Get decodes a T from b[:Size[T]()] under the byte order o.
// b must be at least Size[T]() bytes long. Get never fails: every bit
// pattern of the right width is a valid value (two's complement for signed
// ints, IEEE 754 for floats - NaN and infinities round-trip bit-exactly).
func Get[T Value](o binary.ByteOrder, b []byte) T {
	var v T
	switch p := any(&v).(type) {
	case *int8:
		*p = int8(b[0])
	case *uint8:
		*p = b[0]
	case *int16:
		*p = int16(o.Uint16(b))
	case *uint16:
		*p = o.Uint16(b)
	case *Float16:
		*p = Float16(o.Uint16(b))
	case *int32:
		*p = int32(o.Uint32(b))
	case *uint32:
		*p = o.Uint32(b)
	case *float32:
		*p = math.Float32frombits(o.Uint32(b))
	case *int64:
		*p = int64(o.Uint64(b))
	case *uint64:
		*p = o.Uint64(b)
	case *float64:
		*p = math.Float64frombits(o.Uint64(b))
	case *Int128:
		u := getUint128(o, b)
		*p = Int128{Hi: int64(u.Hi), Lo: u.Lo}
	case *Uint128:
		*p = getUint128(o, b)
	}
	return v
}

// 128-bit values are encoded as two 64-bit halves in significance order:
// little-endian stores the low half first, big-endian the high half first.

func putUint128(o binary.ByteOrder, b []byte, v Uint128) {
	_ = b[15]
	if bigOrdered(o) {
		o.PutUint64(b[0:8], v.Hi)
		o.PutUint64(b[8:16], v.Lo)
		return
	}
	o.PutUint64(b[0:8], v.Lo)
	o.PutUint64(b[8:16], v.Hi)
}

func getUint128(o binary.ByteOrder, b []byte) Uint128 {
	_ = b[15]
	if bigOrdered(o) {
		return Uint128{Hi: o.Uint64(b[0:8]), Lo: o.Uint64(b[8:16])}
	}
	return Uint128{Lo: o.Uint64(b[0:8]), Hi: o.Uint64(b[8:16])}
}

// bigOrdered probes o instead of comparing against binary.BigEndian so that
// binary.NativeEndian resolves to whatever the platform actually is.
func bigOrdered(o binary.ByteOrder) bool {
	return o.Uint16([]byte{0x01, 0x02}) == 0x0102
}

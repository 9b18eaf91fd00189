package scalar

// Uint128 is an unsigned 128-bit integer, 16 bytes wide on the wire.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 is a signed (two's complement) 128-bit integer, 16 bytes wide on
// the wire. The sign lives in Hi.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Uint128From64 widens v.
func Uint128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Int128From64 sign-extends v.
func Int128From64(v int64) Int128 {
	var hi int64
	if v < 0 {
		hi = -1
	}
	return Int128{Hi: hi, Lo: uint64(v)}
}

// IsZero reports whether v == 0.
func (v Uint128) IsZero() bool { return v.Hi == 0 && v.Lo == 0 }

// IsZero reports whether v == 0.
func (v Int128) IsZero() bool { return v.Hi == 0 && v.Lo == 0 }

// Sign returns -1 for negative values, 0 for zero and 1 for positive.
func (v Int128) Sign() int {
	switch {
	case v.Hi < 0:
		return -1
	case v.Hi == 0 && v.Lo == 0:
		return 0
	default:
		return 1
	}
}

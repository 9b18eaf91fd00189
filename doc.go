// Package dataview reads and writes fixed-width numeric values in a
// caller-owned byte buffer, in two modes:
//
//   - offset-addressed: ReadAt / WriteAt take an explicit position and keep
//     no state between calls.
//   - cursor-addressed: a DataView wraps the buffer and tracks a position
//     that advances by the value's width after every successful access.
//
// Conversion rules live in the scalar package: a closed set of 8- to
// 128-bit integers and 16- to 64-bit floats, each with a compile-time byte
// width. The byte order is fixed at build time (little-endian unless built
// with the dataview_be or dataview_ne tag) and applies to every conversion.
//
// Every access is bounds-checked before any byte moves. The only error is
// ErrOutOfBounds; a failed access leaves buffer and cursor untouched, so a
// caller may seek elsewhere and retry.
//
//	buf := make([]byte, 8)
//	v := dataview.New(buf)
//	_ = dataview.Write[uint16](v, 12)
//	_ = dataview.Write[uint16](v, 34)
//	v.Rewind()
//	a, _ := dataview.Read[uint16](v) // 12
//	b, _ := dataview.Read[uint16](v) // 34
//
// A DataView is not safe for concurrent use; callers that share one across
// goroutines must synchronize externally. The stateless functions only
// borrow the buffer for the duration of a call.
package dataview

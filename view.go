package dataview

import (
	"github.com/unkn0wn-root/dataview/internal/bo"
	"github.com/unkn0wn-root/dataview/scalar"
)

// checkWindow validates the byte window [off, off+width) against a buffer
// of bufLen bytes. Negative widths (reachable through ReadSlice) are
// rejected like any other bad window; the subtraction form keeps the check
// overflow-safe for any off.
func checkWindow(op string, bufLen, off, width int) error {
	if off < 0 || width < 0 || width > bufLen-off {
		return &BoundsError{Op: op, Off: off, Width: width, Len: bufLen}
	}
	return nil
}

// ReadAt decodes a T from the window [off, off+scalar.Size[T]()) of buf.
// It keeps no state; independent calls are unordered.
func ReadAt[T scalar.Value](buf []byte, off int) (T, error) {
	w := scalar.Size[T]()
	if err := checkWindow("read", len(buf), off, w); err != nil {
		var zero T
		return zero, err
	}
	return scalar.Get[T](bo.Order(), buf[off:off+w]), nil
}

// WriteAt encodes v into the window [off, off+scalar.Size[T]()) of buf.
// Bounds are checked before any byte is written: on error the buffer is
// unchanged. No byte outside the window is touched.
func WriteAt[T scalar.Value](buf []byte, off int, v T) error {
	w := scalar.Size[T]()
	if err := checkWindow("write", len(buf), off, w); err != nil {
		return err
	}
	scalar.Put(bo.Order(), buf[off:off+w], v)
	return nil
}

package dataview

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is the only failure the accessors produce. Match it with
// errors.Is; the concrete error carries the rejected window.
var ErrOutOfBounds = errors.New("dataview: out of bounds")

// BoundsError reports an access whose byte window [Off, Off+Width) does not
// fit inside a buffer of Len bytes. It is returned before anything is read
// or written - buffer and cursor are exactly as they were.
type BoundsError struct {
	Op    string // "read", "write", "peek", "read_slice", "write_slice"
	Off   int    // requested start offset
	Width int    // bytes the access needed
	Len   int    // buffer length
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("dataview: %s of %d byte(s) at offset %d out of bounds for buffer of %d byte(s)",
		e.Op, e.Width, e.Off, e.Len)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

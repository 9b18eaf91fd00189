package dataview

import (
	"github.com/unkn0wn-root/dataview/internal/bo"
	"github.com/unkn0wn-root/dataview/scalar"
)

// DataView wraps a caller-owned buffer with a cursor that advances by the
// value's width on every successful read or write. The view borrows the
// buffer for its lifetime and never grows, shrinks or reallocates it.
//
// Not safe for concurrent use.
type DataView struct {
	data []byte
	pos  int
	log  Logger
}

// New wraps data with the cursor at 0.
func New(data []byte) *DataView {
	return &DataView{data: data, log: NopLogger{}}
}

// NewWithOptions is New with behavior tuned by opts.
func NewWithOptions(data []byte, opts Options) *DataView {
	return &DataView{
		data: data,
		log:  coalesce[Logger](opts.Logger, NopLogger{}),
	}
}

// Len returns the buffer length in bytes.
func (v *DataView) Len() int { return len(v.data) }

// Bytes returns the underlying buffer. Mutating it is visible to the view
// and vice versa.
func (v *DataView) Bytes() []byte { return v.data }

// Pos returns the current cursor position.
func (v *DataView) Pos() int { return v.pos }

// SetPos moves the cursor to p without validation. An out-of-range p is
// caught by the next access, which fails and leaves the cursor at p.
func (v *DataView) SetPos(p int) { v.pos = p }

// Rewind moves the cursor back to 0.
func (v *DataView) Rewind() { v.pos = 0 }

// Remaining returns the unread tail of the buffer without moving the
// cursor. It is empty when the cursor is at or past the end.
func (v *DataView) Remaining() []byte {
	if v.pos < 0 || v.pos >= len(v.data) {
		return nil
	}
	return v.data[v.pos:]
}

// ReadSlice returns the next n bytes and advances the cursor by n. The
// returned slice aliases the buffer. On out-of-bounds the cursor does not
// move.
func (v *DataView) ReadSlice(n int) ([]byte, error) {
	if err := v.check("read_slice", n); err != nil {
		return nil, err
	}
	s := v.data[v.pos : v.pos+n]
	v.pos += n
	return s, nil
}

// WriteSlice copies p into the buffer at the cursor and advances by len(p).
// Bounds are checked first: on error nothing is copied and the cursor does
// not move.
func (v *DataView) WriteSlice(p []byte) error {
	if err := v.check("write_slice", len(p)); err != nil {
		return err
	}
	copy(v.data[v.pos:], p)
	v.pos += len(p)
	return nil
}

func (v *DataView) check(op string, width int) error {
	if err := checkWindow(op, len(v.data), v.pos, width); err != nil {
		if v.log != nil {
			v.log.Debug("access rejected", Fields{
				"op": op, "pos": v.pos, "width": width, "len": len(v.data),
			})
		}
		return err
	}
	return nil
}

// Read decodes a T at the cursor and advances it by scalar.Size[T]().
// On out-of-bounds the cursor stays where it was.
//
// Read is a package function rather than a method because Go methods cannot
// take type parameters.
func Read[T scalar.Value](v *DataView) (T, error) {
	w := scalar.Size[T]()
	if err := v.check("read", w); err != nil {
		var zero T
		return zero, err
	}
	val := scalar.Get[T](bo.Order(), v.data[v.pos:v.pos+w])
	v.pos += w
	return val, nil
}

// Write encodes val at the cursor and advances it by scalar.Size[T]().
// Bounds are checked before any byte is written: on error buffer and
// cursor are unchanged.
func Write[T scalar.Value](v *DataView, val T) error {
	w := scalar.Size[T]()
	if err := v.check("write", w); err != nil {
		return err
	}
	scalar.Put(bo.Order(), v.data[v.pos:v.pos+w], val)
	v.pos += w
	return nil
}

// Peek decodes a T at the cursor without advancing it.
func Peek[T scalar.Value](v *DataView) (T, error) {
	w := scalar.Size[T]()
	if err := v.check("peek", w); err != nil {
		var zero T
		return zero, err
	}
	return scalar.Get[T](bo.Order(), v.data[v.pos:v.pos+w]), nil
}

package dataview

import (
	"bytes"
	"errors"
	"testing"

	"github.com/unkn0wn-root/dataview/scalar"
)

func mustReadAt[T scalar.Value](t *testing.T, buf []byte, off int) T {
	t.Helper()
	v, err := ReadAt[T](buf, off)
	if err != nil {
		t.Fatalf("ReadAt(off=%d) error: %v", off, err)
	}
	return v
}

func mustWriteAt[T scalar.Value](t *testing.T, buf []byte, off int, v T) {
	t.Helper()
	if err := WriteAt(buf, off, v); err != nil {
		t.Fatalf("WriteAt(off=%d, %v) error: %v", off, v, err)
	}
}

func TestStatelessScenario(t *testing.T) {
	buf := make([]byte, 16)

	mustWriteAt(t, buf, 0, uint16(42))
	mustWriteAt(t, buf, 2, uint32(123))

	if got := mustReadAt[uint16](t, buf, 0); got != 42 {
		t.Errorf("u16 at 0: got %d want 42", got)
	}
	if got := mustReadAt[uint32](t, buf, 2); got != 123 {
		t.Errorf("u32 at 2: got %d want 123", got)
	}
	if !bytes.Equal(buf[6:], make([]byte, 10)) {
		t.Errorf("bytes outside [0,6) mutated: % x", buf[6:])
	}
}

func TestBoundsBoundary(t *testing.T) {
	const n = 32
	buf := make([]byte, n)

	check := func(name string, w int, write func(off int) error, read func(off int) error) {
		t.Run(name, func(t *testing.T) {
			last := n - w
			if err := write(last); err != nil {
				t.Errorf("write at last valid offset %d: %v", last, err)
			}
			if err := read(last); err != nil {
				t.Errorf("read at last valid offset %d: %v", last, err)
			}
			for _, off := range []int{last + 1, n, n + 100} {
				if err := write(off); !errors.Is(err, ErrOutOfBounds) {
					t.Errorf("write at %d: err=%v want ErrOutOfBounds", off, err)
				}
				if err := read(off); !errors.Is(err, ErrOutOfBounds) {
					t.Errorf("read at %d: err=%v want ErrOutOfBounds", off, err)
				}
			}
		})
	}

	check("u8", 1,
		func(off int) error { return WriteAt(buf, off, uint8(1)) },
		func(off int) error { _, err := ReadAt[uint8](buf, off); return err })
	check("u16", 2,
		func(off int) error { return WriteAt(buf, off, uint16(1)) },
		func(off int) error { _, err := ReadAt[uint16](buf, off); return err })
	check("u32", 4,
		func(off int) error { return WriteAt(buf, off, uint32(1)) },
		func(off int) error { _, err := ReadAt[uint32](buf, off); return err })
	check("f64", 8,
		func(off int) error { return WriteAt(buf, off, float64(1)) },
		func(off int) error { _, err := ReadAt[float64](buf, off); return err })
	check("u128", 16,
		func(off int) error { return WriteAt(buf, off, scalar.Uint128From64(1)) },
		func(off int) error { _, err := ReadAt[scalar.Uint128](buf, off); return err })
}

func TestNegativeOffsetRejected(t *testing.T) {
	buf := make([]byte, 8)
	if _, err := ReadAt[uint8](buf, -1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("read at -1: err=%v want ErrOutOfBounds", err)
	}
	if err := WriteAt(buf, -1, uint8(1)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("write at -1: err=%v want ErrOutOfBounds", err)
	}
}

func TestFailedWriteLeavesBufferUntouched(t *testing.T) {
	buf := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	before := append([]byte(nil), buf...)

	// window [2, 6) sticks two bytes past the end
	if err := WriteAt(buf, 2, uint32(0xFFFFFFFF)); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("err=%v want ErrOutOfBounds", err)
	}
	if !bytes.Equal(buf, before) {
		t.Errorf("buffer mutated by failed write: % x -> % x", before, buf)
	}
}

func TestBoundsErrorDetails(t *testing.T) {
	buf := make([]byte, 4)
	_, err := ReadAt[uint64](buf, 1)

	var be *BoundsError
	if !errors.As(err, &be) {
		t.Fatalf("err=%v want *BoundsError", err)
	}
	if be.Op != "read" || be.Off != 1 || be.Width != 8 || be.Len != 4 {
		t.Errorf("unexpected fields: %+v", be)
	}
	if be.Error() == "" {
		t.Error("empty error message")
	}
}

func TestReadAtZeroLengthBuffer(t *testing.T) {
	if _, err := ReadAt[uint8](nil, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("read on nil buffer: err=%v want ErrOutOfBounds", err)
	}
}

//go:build !dataview_be && !dataview_ne

package dataview

import (
	"bytes"
	"testing"
)

// Default builds are little-endian; golden bytes only hold there. The
// big-endian layout is pinned in scalar's golden tests, which take the
// order explicitly.
func TestDefaultBuildIsLittleEndian(t *testing.T) {
	buf := make([]byte, 2)
	mustWriteAt(t, buf, 0, uint16(0x0102))
	if !bytes.Equal(buf, []byte{0x02, 0x01}) {
		t.Fatalf("u16 0x0102 encoded as % x want 02 01", buf)
	}

	v := New(make([]byte, 4))
	mustWrite(t, v, uint32(0x01020304))
	if !bytes.Equal(v.Bytes(), []byte{0x04, 0x03, 0x02, 0x01}) {
		t.Fatalf("u32 0x01020304 encoded as % x", v.Bytes())
	}
}

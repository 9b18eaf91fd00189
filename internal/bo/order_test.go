//go:build !dataview_be && !dataview_ne

package bo

import (
	"encoding/binary"
	"testing"
)

func TestDefaultOrderIsLittleEndian(t *testing.T) {
	if Order() != binary.ByteOrder(binary.LittleEndian) {
		t.Fatalf("Order() = %v want little-endian", Order())
	}
}

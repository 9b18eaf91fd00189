//go:build !dataview_be && !dataview_ne

package bo

import "encoding/binary"

// Order returns the byte order this build was configured with.
func Order() binary.ByteOrder { return binary.LittleEndian }

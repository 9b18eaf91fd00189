//go:build dataview_ne

package bo

import "encoding/binary"

// Order returns the byte order this build was configured with. Under the
// dataview_ne tag that is whatever the target platform's natural order is;
// callers must not assume a specific one.
func Order() binary.ByteOrder { return binary.NativeEndian }

// Package bo fixes the byte order every dataview conversion uses.
//
// The order is chosen once at build time via build tags and cannot change at
// runtime:
//
//	(default)          little-endian
//	-tags dataview_be  big-endian
//	-tags dataview_ne  the build target's native order
package bo

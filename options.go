package dataview

// Options tune a DataView created with NewWithOptions. The zero value
// matches New: no logging.
type Options struct {
	// Logger receives a debug event for every rejected access.
	// If nil, NopLogger is used.
	Logger Logger
}

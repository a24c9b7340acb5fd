package lang

import "fmt"

// Location is a value type naming a single byte position within a namespace's
// source. It is cheap to copy: every field is either a primitive or a
// borrowed string, never an owned allocation.
//
// An unknown location carries Known == false and zero coordinates; it is
// legal anywhere a real location is, and renders as "<unknown>:0:0".
type Location struct {
	// Namespace is the name of the namespace this location belongs to.
	Namespace string
	// Filename is the originating file path, if any.
	Filename string
	// HasFilename reports whether Filename is meaningful (the root REPL
	// namespace, for instance, has no backing file).
	HasFilename bool
	// Offset is the byte offset into the originating buffer, or -1 if the
	// location does not point into a live buffer.
	Offset int
	// Line is the 1-based line number.
	Line uint16
	// Column is the 1-based column number.
	Column uint16
	// Known reports whether this location was actually resolved.
	Known bool
}

// UnknownLocation returns an unknown location scoped to the given namespace.
func UnknownLocation(namespace string) Location {
	return Location{Namespace: namespace, Offset: -1}
}

// String renders the location as "namespace:line:col", or "file:line:col"
// when a filename is present, or "<unknown>:0:0" when unresolved.
func (l Location) String() string {
	if !l.Known {
		return "<unknown>:0:0"
	}

	name := l.Namespace
	if l.HasFilename {
		name = l.Filename
	}

	return fmt.Sprintf("%s:%d:%d", name, l.Line, l.Column)
}

// LocationRange is a (start, end) pair of locations. End equals Start for
// point locations (most tokens other than lists span more than one byte).
type LocationRange struct {
	Start Location
	End   Location
}

// PointRange returns a LocationRange whose Start and End are both loc.
func PointRange(loc Location) LocationRange {
	return LocationRange{Start: loc, End: loc}
}

// Known reports whether this range was actually resolved, mirroring its
// Start location (by construction Start and End always agree).
func (r LocationRange) Known() bool {
	return r.Start.Known
}

// String renders the range using its Start location.
func (r LocationRange) String() string {
	return r.Start.String()
}

package geometry

import "fmt"

// Error describes invalid or inconsistent input geometry. It carries the
// identity of the offending entity so the geometry can be fixed.
type Error struct {
	Surface string
	Other   string // second surface for pairwise findings
	Section int    // -1 when not section-specific
	Msg     string
}

func (e *Error) Error() string {
	switch {
	case e.Other != "":
		return fmt.Sprintf("geometry: surfaces %q and %q: %s", e.Surface, e.Other, e.Msg)
	case e.Section >= 0:
		return fmt.Sprintf("geometry: surface %q section %d: %s", e.Surface, e.Section, e.Msg)
	default:
		return fmt.Sprintf("geometry: surface %q: %s", e.Surface, e.Msg)
	}
}

func errf(surface string, section int, format string, args ...any) *Error {
	return &Error{Surface: surface, Section: section, Msg: fmt.Sprintf(format, args...)}
}

// PairError reports a finding involving two surfaces.
func PairError(a, b, format string, args ...any) *Error {
	return &Error{Surface: a, Other: b, Section: -1, Msg: fmt.Sprintf(format, args...)}
}

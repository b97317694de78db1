package topology

import "fmt"

// Error describes a boundary that cannot be closed within tolerance.
type Error struct {
	Surface string
	Section int // -1 when not section-specific
	Msg     string
}

func (e *Error) Error() string {
	if e.Section >= 0 {
		return fmt.Sprintf("topology: surface %q section %d: %s", e.Surface, e.Section, e.Msg)
	}
	return fmt.Sprintf("topology: surface %q: %s", e.Surface, e.Msg)
}

func errf(surface string, section int, format string, args ...any) *Error {
	return &Error{Surface: surface, Section: section, Msg: fmt.Sprintf(format, args...)}
}

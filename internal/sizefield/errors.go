package sizefield

import (
	"fmt"
	"strconv"
)

// Error reports a growth-ratio bound violation in the composed field,
// which indicates conflicting size specifications.
type Error struct {
	Spec string // offending specification label
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("sizefield: spec %s: %s", e.Spec, e.Msg)
}

func formatRatio(r float64) string {
	return strconv.FormatFloat(r, 'g', 4, 64)
}

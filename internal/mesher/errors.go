package mesher

import "fmt"

// GenerationError reports an engine failure or a generated mesh that
// fails the manifold or quality checks. Entity is the offending engine
// entity or element id when one is known.
type GenerationError struct {
	Entity int
	Msg    string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Entity != 0 {
		return fmt.Sprintf("mesher: entity %d: %s", e.Entity, e.Msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("mesher: %s: %v", e.Msg, e.Err)
	}
	return "mesher: " + e.Msg
}

func (e *GenerationError) Unwrap() error { return e.Err }

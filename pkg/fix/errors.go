package fix

import "fmt"

// ConflictError is a FixConflictError (spec §7): an incompatible fix
// combination on one anchor, or a fix that would mutate a non-literal
// templated slice. Reported upward; the offending fix is dropped rather
// than applied.
type ConflictError struct {
	AnchorID uint64
	Reason   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("fix conflict at anchor %d: %s", e.AnchorID, e.Reason)
}

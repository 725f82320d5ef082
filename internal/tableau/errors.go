package tableau

import "fmt"

// InvariantError reports that the prover stopped without a verdict. The
// prover returns it when the step budget is exceeded, which ordinary input
// can cause (a search that does not terminate, or a budget set too low).
// It is fatal and not recoverable.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("tableau invariant violated: %s", e.Msg)
}

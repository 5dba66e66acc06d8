package mcst

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrOutOfNodes is returned when the arena's capacity is exhausted during
// Allocate. Fatal to the current Evaluate call.
var ErrOutOfNodes = errors.New("mcst: out of nodes")

// ErrChildTableFull is returned when AddChild is attempted on a node
// already holding MaxMoves children. Fatal; indicates a legality-set /
// branching-factor mismatch between the caller and the engine config.
var ErrChildTableFull = errors.New("mcst: child table full")

// ErrEmptyLegalSet is not an exception: Evaluate returns it when called
// with zero legal moves at the root, and PickBestRootMove returns it
// (with the zero move) when root has no children.
var ErrEmptyLegalSet = errors.New("mcst: empty legal move set")

// InvariantViolation marks an assertion-class failure: a broken contract
// between the engine and its caller (e.g. UCT computed on an unexplored
// child, or a losing-terminal child under an uncontrolled parent that
// should already have been propagated). These indicate a programmer
// error in the engine or simulator, never a recoverable runtime
// condition, so the engine panics rather than returning an error.
type InvariantViolation struct {
	Msg string
}

func (e InvariantViolation) Error() string {
	return "mcst: invariant violation: " + e.Msg
}

func panicInvariant(format string, args ...any) {
	panic(InvariantViolation{Msg: fmt.Sprintf(format, args...)})
}

// wrapFatal attaches a stack trace and a short context string to a
// fatal arena error, so a caller driving many Evaluate calls in a batch
// (pkg/versus) can tell which arena operation failed.
func wrapFatal(err error, context string) error {
	return errors.Wrapf(err, "mcst: %s", context)
}

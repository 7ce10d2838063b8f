package player

import (
	"errors"
	"fmt"
)

// ErrSocketConnect means a freshly spawned idle player never started accepting
// control connections within the retry budget.
var ErrSocketConnect = errors.New("control socket connection failed")

// SpawnError wraps the OS error from a failed player start.
type SpawnError struct {
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("start player: %v", e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ExitError carries a non-zero player exit status through to the invocation
// boundary; the whole invocation terminates with that status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("player exited with status %d", e.Code)
}

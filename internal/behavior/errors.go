package behavior

import "errors"

var (
	// ErrUnknownColumn matches every error returned by UnknownColumnFailing.
	ErrUnknownColumn = errors.New("unknown column detected on auto-mapping")
	// ErrInvalidBehavior is returned for behavior text or values outside the enumeration.
	ErrInvalidBehavior = errors.New("invalid behavior")
)

// UnknownColumnError is raised by UnknownColumnFailing.
// Its message is exactly BuildMessage applied to Target.
type UnknownColumnError struct {
	Target  Target
	message string
}

func newUnknownColumnError(t Target) *UnknownColumnError {
	return &UnknownColumnError{Target: t, message: BuildMessage(t)}
}

func (e *UnknownColumnError) Error() string {
	return e.message
}

// Is reports whether target is ErrUnknownColumn.
func (e *UnknownColumnError) Is(target error) bool {
	return target == ErrUnknownColumn
}

package rxcore

import "fmt"

// RuntimeErr carries a panic recovered from user code as a stream error.
// Producers and scheduled tasks that panic are failed with a RuntimeErr, so
// subscribers see an ordinary Error event and can match it with errors.As.
// Unwrap exposes the panic value when it already was an error.
type RuntimeErr struct {
	err error
}

// RuntimeError wraps a recovered value. Non-error values are formatted into
// the message.
func RuntimeError(v interface{}) error {
	if err, ok := v.(error); ok {
		return RuntimeErr{err}
	}
	return RuntimeErr{fmt.Errorf("runtime-error: %v", v)}
}

func (e RuntimeErr) Error() string {
	return e.err.Error()
}

// Previous returns the wrapped cause.
func (e RuntimeErr) Previous() error {
	return e.err
}

func (e RuntimeErr) Unwrap() error {
	return e.err
}

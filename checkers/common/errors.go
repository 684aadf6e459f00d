package common

import "fmt"

// EnvError is the only failure class in the suite: the host denied an
// environment or filesystem operation (permission, path exists/missing,
// identity lookup failure). In-memory probes cannot fail.
type EnvError struct {
	Op   string
	Path string
	Err  error
}

func (e *EnvError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *EnvError) Unwrap() error {
	return e.Err
}

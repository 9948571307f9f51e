package errorsUtils

import (
	"errors"
	"fmt"
	"runtime"
)

// StatusError is returned by HTTP clients for an unexpected response status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

func StatusCode(err error) (int, bool) {
	var sErr *StatusError
	if errors.As(err, &sErr) {
		return sErr.Code, true
	}
	return 0, false
}

func WrapPathErr(err error) error {
	pc, _, line, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return fmt.Errorf("[%s:%d] %w", fn, line, err)
}

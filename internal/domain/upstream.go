package domain

import "fmt"

// StatusError reports a non-2xx answer from an upstream HTTP endpoint.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("Code %d", e.Code)
	}
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

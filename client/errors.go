package client

import "fmt"

// AuthError is returned when the backend rejects a login attempt.
type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("login failed: %d", e.StatusCode)
}

// FetchError is returned when a daily record cannot be retrieved.
type FetchError struct {
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("GET /v1/attendance/me/daily %d", e.StatusCode)
}

// SubmitError is returned when the backend rejects a clock event. Detail
// carries the response body text since the backend reports the reason there.
type SubmitError struct {
	StatusCode int
	Detail     string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("POST /v1/timeclock/time_entries %d: %s", e.StatusCode, e.Detail)
}

// Package models defines the data exchanged with the attendance backend.
package models

// Status is the backend's classification of a daily record's current
// attendance phase. It is computed server-side and treated as opaque here:
// the client never re-derives it from the record's timestamps.
type Status string

const (
	StatusNotStarted   Status = "not_started"
	StatusOpen         Status = "open"
	StatusOnBreak      Status = "on_break"
	StatusClosed       Status = "closed"
	StatusInconsistent Status = "inconsistent_data"
)

// Kind identifies a clock event.
type Kind string

const (
	ClockIn    Kind = "clock_in"
	ClockOut   Kind = "clock_out"
	BreakStart Kind = "break_start"
	BreakEnd   Kind = "break_end"
)

// User is the authenticated user's profile as returned by the backend.
type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
}

// Session holds the bearer token and profile obtained at login. An empty
// token means unauthenticated. Sessions are stored and replaced wholesale,
// never mutated field by field.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// LoggedIn reports whether the session carries a token.
func (s *Session) LoggedIn() bool {
	return s != nil && s.Token != ""
}

// Actual holds the recorded clock-in and clock-out timestamps for a day.
// Either may be absent.
type Actual struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// Totals are the backend-computed minute totals for one day. The client
// displays them as-is.
type Totals struct {
	Work     int `json:"work"`
	Break    int `json:"break"`
	Overtime int `json:"overtime"`
	Night    int `json:"night"`
	Holiday  int `json:"holiday"`
}

// DailyRecord is the backend's authoritative summary of one calendar day of
// attendance for the current user. The client holds at most one at a time
// and re-fetches it after every mutating action instead of patching it.
type DailyRecord struct {
	Date   string `json:"date"`
	Actual Actual `json:"actual"`
	Totals Totals `json:"totals"`
	Status Status `json:"status"`
}

// ClockEvent is an outbound punch intent. It exists only for the duration of
// a submission; the backend is the append-only system of record.
type ClockEvent struct {
	Kind       Kind   `json:"kind"`
	HappenedAt string `json:"happened_at"`
	Source     string `json:"source"`
}

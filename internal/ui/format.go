package ui

import (
	"fmt"
	"time"

	"github.com/noritama/dakoku/internal/timeutil"
)

// FormatStamp renders a backend timestamp as a clock face, or "-" when the
// event has not happened yet.
func FormatStamp(s *string, twentyFourHour bool) string {
	if s == nil || *s == "" {
		return "-"
	}

	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return *s
	}

	return timeutil.Clock(t, twentyFourHour)
}

// FormatMinutes expresses a minute total as hours and minutes.
func FormatMinutes(val int) string {
	hrs, mins := timeutil.MinsToHoursAndMins(val)

	return fmt.Sprintf("%dh %dm", hrs, mins)
}

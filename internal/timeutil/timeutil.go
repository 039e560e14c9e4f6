// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"math"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const minutesInAnHour = 60

// Zone is the time-clock service's canonical timezone. Japan observes no
// daylight saving, so a fixed offset is exact and keeps date arithmetic
// independent of the host machine's zone database and local zone.
var Zone = time.FixedZone("Asia/Tokyo", 9*60*60)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05-07:00"
)

// DateString formats the calendar date of t in the service zone as
// YYYY-MM-DD. The date is derived from the same fixed-zone conversion used
// by Timestamp so the two can never disagree around midnight.
func DateString(t time.Time) string {
	return t.In(Zone).Format(dateLayout)
}

// Timestamp formats t as an ISO-8601 timestamp with the service zone's
// explicit +09:00 offset.
func Timestamp(t time.Time) string {
	return t.In(Zone).Format(timestampLayout)
}

// NowDateString returns today's calendar date in the service zone.
func NowDateString() string {
	return DateString(time.Now())
}

// NowTimestamp returns the current instant as a service-zone timestamp.
func NowTimestamp() string {
	return Timestamp(time.Now())
}

// Clock formats the time of day of t in the service zone.
func Clock(t time.Time, twentyFourHour bool) string {
	layout := "03:04:05 PM"
	if twentyFourHour {
		layout = "15:04:05"
	}

	return t.In(Zone).Format(layout)
}

// FromStr parses a natural-language or formatted date string (such as
// "yesterday" or "2025-09-03") into a service-zone date string.
func FromStr(s string) (string, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: time.Now().In(Zone),
	}

	d, err := dateparser.Parse(cfg, s)
	if err != nil {
		return "", err
	}

	return DateString(d.Time), nil
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

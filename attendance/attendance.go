// Package attendance maps server-reported daily statuses to the set of
// clock actions the client may offer. The backend owns the status state
// machine; this package only gates the interaction layer and never infers a
// status from raw timestamps.
package attendance

import "github.com/noritama/dakoku/internal/models"

var permitted = map[models.Status][]models.Kind{
	models.StatusNotStarted:   {models.ClockIn},
	models.StatusOpen:         {models.ClockOut, models.BreakStart},
	models.StatusOnBreak:      {models.BreakEnd},
	models.StatusClosed:       {},
	models.StatusInconsistent: {},
}

// Permitted returns the clock actions allowed from the given status.
// Unknown statuses permit nothing.
func Permitted(s models.Status) []models.Kind {
	return permitted[s]
}

// Can reports whether kind is allowed from the given status. This is a UX
// guard, not a security boundary: the backend may still reject the entry.
func Can(s models.Status, kind models.Kind) bool {
	for _, k := range permitted[s] {
		if k == kind {
			return true
		}
	}

	return false
}

// Label returns a short human-readable name for a status.
func Label(s models.Status) string {
	switch s {
	case models.StatusNotStarted:
		return "not started"
	case models.StatusOpen:
		return "working"
	case models.StatusOnBreak:
		return "on break"
	case models.StatusClosed:
		return "finished"
	case models.StatusInconsistent:
		return "inconsistent data"
	default:
		return string(s)
	}
}

// KindLabel returns a short human-readable name for a clock action.
func KindLabel(k models.Kind) string {
	switch k {
	case models.ClockIn:
		return "clock in"
	case models.ClockOut:
		return "clock out"
	case models.BreakStart:
		return "start break"
	case models.BreakEnd:
		return "end break"
	default:
		return string(k)
	}
}

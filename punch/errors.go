package punch

import (
	"fmt"

	"github.com/noritama/dakoku/attendance"
	"github.com/noritama/dakoku/internal/models"
)

// ValidationError reports a clock action that the current status does not
// permit. It is raised before any network submission.
type ValidationError struct {
	Kind   models.Kind
	Status models.Status
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(
		"cannot %s while %s",
		attendance.KindLabel(e.Kind),
		attendance.Label(e.Status),
	)
}

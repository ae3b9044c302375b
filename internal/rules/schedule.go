package rules

import (
	"fmt"
	"time"

	"clubmanager/internal/apperrors"
	. "clubmanager/internal/models"
)

// MinimumSessionGap is the smallest allowed distance between two session
// start times of the same member on one day.
const MinimumSessionGap = 3 * time.Hour

// Gap is the absolute distance between two start times.
func Gap(a, b ClockTime) time.Duration {
	d := a.Sub(b)
	if d < 0 {
		return -d
	}
	return d
}

// CheckScheduleConflict fails when any of the member's existing sessions on
// the candidate's date starts less than MinimumSessionGap away from it.
// Sessions on other dates and the candidate itself are ignored.
func CheckScheduleConflict(candidate Session, existing []Session) error {
	for _, session := range existing {
		if candidate.ID != 0 && session.ID == candidate.ID {
			continue
		}
		if !session.SessionDate.Equal(candidate.SessionDate) {
			continue
		}
		if gap := Gap(candidate.StartTime, session.StartTime); gap < MinimumSessionGap {
			return apperrors.BusinessRule(
				apperrors.CodeScheduleConflict,
				fmt.Sprintf(
					"conflicting assignment: session %d on %s at %s is less than 3 hours from %s",
					session.ID, session.SessionDate, session.StartTime, candidate.StartTime,
				),
			)
		}
	}
	return nil
}

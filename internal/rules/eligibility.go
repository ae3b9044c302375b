package rules

import (
	"fmt"
	"time"

	"clubmanager/internal/apperrors"
	. "clubmanager/internal/models"
)

const (
	MinimumMemberAge = 11
	MajorityAge      = 18
)

// Identity kinds, used in uniqueness messages.
const (
	KindClubMember   = "club member"
	KindPersonnel    = "personnel"
	KindFamilyMember = "family member"
)

// AgeOn is the calendar-year difference between now and dob. Someone born
// on December 31 counts as a year older on January 1.
func AgeOn(dob Date, now time.Time) int {
	return now.Year() - dob.Year()
}

func CategoryFor(dob Date, now time.Time) AgeCategory {
	if AgeOn(dob, now) >= MajorityAge {
		return CategoryMajor
	}
	return CategoryMinor
}

// CategoryInYear is the fee category for a membership year.
func CategoryInYear(dob Date, year int) AgeCategory {
	return CategoryFor(dob, time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
}

func CheckMinimumAge(dob Date, now time.Time) error {
	if dob.IsZero() {
		return apperrors.Validation("date of birth is required", map[string]string{"dob": "required"})
	}
	if age := AgeOn(dob, now); age < MinimumMemberAge {
		return apperrors.BusinessRule(
			apperrors.CodeMemberTooYoung,
			fmt.Sprintf("member must be at least %d years old (is %d)", MinimumMemberAge, age),
		)
	}
	return nil
}

// CheckIdentityAvailable turns the result of the ssn / medicare card lookups
// for one entity kind into a rule violation. The ssn is reported first.
func CheckIdentityAvailable(kind string, ssnTaken, medicareTaken bool) error {
	if ssnTaken {
		return apperrors.BusinessRule(
			apperrors.CodeSSNTaken,
			fmt.Sprintf("a %s with this SSN already exists", kind),
		)
	}
	if medicareTaken {
		return apperrors.BusinessRule(
			apperrors.CodeMedicareTaken,
			fmt.Sprintf("a %s with this medicare card already exists", kind),
		)
	}
	return nil
}

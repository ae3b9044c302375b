package rules

import (
	"fmt"

	"clubmanager/internal/apperrors"
	. "clubmanager/internal/models"
)

func CheckTeamGender(memberGender, teamGender Gender) error {
	if memberGender == "" || memberGender != teamGender {
		return apperrors.BusinessRule(
			apperrors.CodeGenderMismatch,
			fmt.Sprintf("member gender %q does not match team gender %q", memberGender, teamGender),
		)
	}
	return nil
}

// CheckSessionTeams enforces that a game is played between two different
// teams. Training only needs team1.
func CheckSessionTeams(sessionType SessionType, team1ID int, team2ID *int) error {
	if team1ID <= 0 {
		return apperrors.Validation("team1 is required", map[string]string{"team1Id": "required"})
	}
	if sessionType != SessionGame {
		return nil
	}
	if team2ID == nil {
		return apperrors.Validation("a game needs a second team", map[string]string{"team2Id": "required"})
	}
	if *team2ID == team1ID {
		return apperrors.BusinessRule(apperrors.CodeGameSameTeam, "a game needs two different teams")
	}
	return nil
}

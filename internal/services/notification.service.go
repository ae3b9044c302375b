package services

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"clubmanager/internal/logger"
	. "clubmanager/internal/models"
)

const bodySnippetLimit = 100

// NotificationService composes the emails sent to players when a session
// is scheduled. Only the log rows are produced; delivery is external.
type NotificationService struct {
	log logger.Logger
}

func NewNotificationService() *NotificationService {
	return &NotificationService{log: logger.New("NotificationService")}
}

type SessionNotice struct {
	Session      Session
	TeamName     string
	OpponentName string
	LocationID   *int
	Recipients   []RosterEntry
}

func (s *NotificationService) SessionNotices(notice SessionNotice, now time.Time) []EmailLog {
	log := s.log.Function("SessionNotices")

	subject := fmt.Sprintf("%s %s on %s", notice.TeamName, strings.ToLower(string(notice.Session.SessionType)), notice.Session.SessionDate)

	logs := make([]EmailLog, 0, len(notice.Recipients))
	for _, recipient := range notice.Recipients {
		if recipient.Email == "" {
			continue
		}

		body := fmt.Sprintf(
			"Hi %s, you play %s for %s on %s at %s",
			recipient.FirstName,
			recipient.Role,
			notice.TeamName,
			notice.Session.SessionDate,
			notice.Session.StartTime,
		)
		if notice.OpponentName != "" {
			body += " against " + notice.OpponentName
		}
		if notice.Session.Address != "" {
			body += ", " + notice.Session.Address
		}

		logs = append(logs, EmailLog{
			EmailDate:        now,
			SenderLocationID: notice.LocationID,
			ReceiverEmail:    recipient.Email,
			Subject:          subject,
			BodySnippet:      Snippet(body, bodySnippetLimit),
		})
	}

	log.Debug("composed session notices", "sessionID", notice.Session.ID, "count", len(logs))
	return logs
}

// Snippet cuts s to at most limit characters.
func Snippet(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}

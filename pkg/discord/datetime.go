package discord

import (
	"time"

	"brettbot/internal/domain"
	"brettbot/pkg/tz"
)

// ParseWindowStart parses an optional poll window start (TT.MM.JJJJ) in the
// local German timezone. An empty string yields the zero time, which the
// lifecycle layer resolves to the next Monday. A date before today is a
// validation error.
func ParseWindowStart(dateStr string) (time.Time, error) {
	dateStr = trimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, nil
	}
	parsed, err := time.ParseInLocation("02.01.2006", dateStr, tz.Berlin)
	if err != nil {
		return time.Time{}, domain.ErrWindowInPast
	}
	now := time.Now().In(tz.Berlin)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, tz.Berlin)
	if parsed.Before(today) {
		return time.Time{}, domain.ErrWindowInPast
	}
	return parsed, nil
}

// FormatDate renders a date the way poll options do.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006")
}

func trimSpace(s string) string {
	start := 0
	for start < len(s) && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	end := len(s)
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return s[start:end]
}

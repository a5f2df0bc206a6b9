package domain

import "errors"

// Domain errors.
var (
	ErrPollNotFound   = errors.New("umfrage nicht gefunden")
	ErrPollExists     = errors.New("umfrage existiert bereits")
	ErrPollClosed     = errors.New("umfrage ist bereits geschlossen")
	ErrWindowInPast   = errors.New("der zeitraum muss in der zukunft liegen")
	ErrNotBotPoll     = errors.New("nachricht ist keine umfrage des bots")
	ErrCorruptedVotes = errors.New("abstimmungsdaten sind beschädigt")
)

var errorCodes = map[error]string{
	ErrPollNotFound:   "poll_not_found",
	ErrPollExists:     "poll_exists",
	ErrPollClosed:     "poll_closed",
	ErrWindowInPast:   "window_in_past",
	ErrNotBotPoll:     "not_bot_poll",
	ErrCorruptedVotes: "corrupted_votes",
}

// Code returns the stable code of a domain error, or "" for non-domain errors.
// Codes are what the presentation layer feeds into i18n lookups.
func Code(err error) string {
	for e, code := range errorCodes {
		if errors.Is(err, e) {
			return code
		}
	}
	return ""
}

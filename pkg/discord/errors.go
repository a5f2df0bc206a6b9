package discord

import "brettbot/internal/domain"

// MessageKey maps a domain error to the i18n key of its user-facing message.
// Non-domain errors fall back to the generic message.
func MessageKey(err error) string {
	if err == nil {
		return ""
	}
	if code := domain.Code(err); code != "" {
		return "error_" + code
	}
	return "error_generic"
}

package domain

import (
	"time"

	"brettbot/internal/domain/entities"
)

// OptionsPerPoll is the number of consecutive days offered by a poll.
const OptionsPerPoll = 7

// weekdayNames maps time.Weekday to its German name.
var weekdayNames = [7]string{
	"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
}

// optionEmojis are the keycap reactions used to vote, one per day offset.
var optionEmojis = [OptionsPerPoll]string{
	"1️⃣", "2️⃣", "3️⃣", "4️⃣",
	"5️⃣", "6️⃣", "7️⃣",
}

// GenerateOptions builds the option set for a poll window: one option per day
// for OptionsPerPoll consecutive days starting at windowStart, ordinal = day
// offset. holidays maps ISO dates (YYYY-MM-DD) to holiday names; a matching
// date takes the holiday name as label, otherwise weekday plus date is used.
// Pure and deterministic; options are generated once at creation and never
// recomputed afterwards.
func GenerateOptions(windowStart time.Time, holidays map[string]string) []entities.PollOption {
	options := make([]entities.PollOption, 0, OptionsPerPoll)
	for i := 0; i < OptionsPerPoll; i++ {
		day := windowStart.AddDate(0, 0, i)
		label, ok := holidays[day.Format("2006-01-02")]
		if !ok {
			label = weekdayNames[day.Weekday()] + ", " + day.Format("02.01.")
		}
		options = append(options, entities.PollOption{
			Ordinal:  i,
			Label:    label,
			EmojiKey: optionEmojis[i],
		})
	}
	return options
}

// EmojiOrdinal maps a reaction emoji back to its option ordinal. Unknown
// emojis report false; reaction streams are noisy and those are dropped.
func EmojiOrdinal(emoji string) (int, bool) {
	for i, e := range optionEmojis {
		if e == emoji {
			return i, true
		}
	}
	return 0, false
}

// OptionEmoji returns the reaction emoji for a day offset.
func OptionEmoji(ordinal int) string {
	return optionEmojis[ordinal]
}

// NextMonday returns the Monday following date, the default poll window start.
func NextMonday(date time.Time) time.Time {
	days := 7 - int(date.Weekday()-time.Monday)
	if days > 7 {
		days -= 7
	}
	day := date.AddDate(0, 0, days)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, date.Location())
}

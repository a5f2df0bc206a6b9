package discord

import (
	"fmt"
	"strings"

	"brettbot/internal/domain/entities"

	"github.com/bwmarrin/discordgo"
)

const (
	embedColor  = 0x5865F2
	pollTitle   = "🎲 Spieltag-Umfrage"
	resultTitle = "🏁 Umfrage-Ergebnis"
)

func formatVotes(count int) string {
	if count == 1 {
		return "1 Stimme"
	}
	return fmt.Sprintf("%d Stimmen", count)
}

// BuildPollEmbed renders an open poll: question first, then one line per
// option with its reaction emoji, label and current count.
func BuildPollEmbed(display entities.PollDisplay) *discordgo.MessageEmbed {
	var b strings.Builder
	b.WriteString(display.Question)
	b.WriteString("\n")
	for _, opt := range display.Options {
		b.WriteString(fmt.Sprintf("\n%s  **%s** — %s", opt.EmojiKey, opt.Label, formatVotes(opt.VoteCount)))
	}
	return &discordgo.MessageEmbed{
		Title:       pollTitle,
		Description: b.String(),
		Color:       embedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Reagiere mit 1️⃣–7️⃣ (Mehrfachauswahl möglich)"},
	}
}

// BuildResultEmbed renders a final result. Ties are listed as they are, in
// option order; nothing picks a single winner. A poll without a single vote
// ties every option at zero, which reads as "no votes" rather than a winner
// list.
func BuildResultEmbed(summary entities.ResultSummary, labelOrder []string) *discordgo.MessageEmbed {
	var b strings.Builder
	switch {
	case len(summary.Winners) == 0 || summary.Counts[summary.Winners[0]] == 0:
		b.WriteString("Keine Stimmen abgegeben.")
	case len(summary.Winners) == 1:
		b.WriteString(fmt.Sprintf("**Gewinner:** %s", summary.Winners[0]))
	default:
		b.WriteString(fmt.Sprintf("**Gleichstand:** %s", strings.Join(summary.Winners, ", ")))
	}
	b.WriteString("\n")
	for _, label := range labelOrder {
		count, ok := summary.Counts[label]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("\n%s — %s", label, formatVotes(count)))
	}
	return &discordgo.MessageEmbed{
		Title:       resultTitle,
		Description: b.String(),
		Color:       embedColor,
	}
}

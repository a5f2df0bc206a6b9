package discord

import (
	"context"
	"errors"
	"log"

	"github.com/bwmarrin/discordgo"

	"brettbot/internal/domain"
	"brettbot/internal/domain/entities"
	pkgdiscord "brettbot/pkg/discord"
)

// displayFromPoll rebuilds the rendered view from stored state only; labels
// come verbatim from the options fixed at creation.
func displayFromPoll(poll *entities.Poll) entities.PollDisplay {
	display := entities.PollDisplay{Question: poll.Question}
	for _, opt := range poll.Options {
		display.Options = append(display.Options, entities.DisplayOption{
			Label:     opt.Label,
			EmojiKey:  opt.EmojiKey,
			VoteCount: poll.VoteCount(opt.Ordinal),
		})
	}
	return display
}

// refreshPollMessage re-renders the poll embed with current counts.
func (h *Handler) refreshPollMessage(ctx context.Context, s *discordgo.Session, messageID string) {
	poll, err := h.pollUseCase.GetPoll(ctx, messageID)
	if err != nil {
		if !errors.Is(err, domain.ErrPollNotFound) {
			log.Printf("❌ Loading poll %s for refresh failed: %v", messageID, err)
		}
		return
	}
	embed := pkgdiscord.BuildPollEmbed(displayFromPoll(poll))
	embeds := []*discordgo.MessageEmbed{embed}
	if _, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:      messageID,
		Channel: poll.ChannelID,
		Embeds:  &embeds,
	}); err != nil {
		log.Printf("❌ Updating poll embed %s failed: %v", messageID, err)
	}
}

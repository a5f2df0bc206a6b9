package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"brettbot/internal/domain/entities"
	"brettbot/internal/ports/output"
	pkgdiscord "brettbot/pkg/discord"
)

var _ output.PollPublisher = (*Publisher)(nil)

// Publisher posts poll messages and results to Discord. The id of the posted
// message becomes the poll id.
type Publisher struct {
	session *discordgo.Session
}

func NewPublisher(session *discordgo.Session) *Publisher {
	return &Publisher{session: session}
}

func (p *Publisher) PublishPoll(ctx context.Context, channelID string, display entities.PollDisplay) (string, error) {
	msg, err := p.session.ChannelMessageSendEmbed(channelID, pkgdiscord.BuildPollEmbed(display))
	if err != nil {
		return "", fmt.Errorf("send poll message: %w", err)
	}
	// Seed one reaction per option so voting is a single click. A failed
	// seed is cosmetic; users can still react themselves.
	for _, opt := range display.Options {
		if err := p.session.MessageReactionAdd(channelID, msg.ID, opt.EmojiKey); err != nil {
			log.Printf("⚠️ Seeding reaction %s on %s failed: %v", opt.EmojiKey, msg.ID, err)
		}
	}
	return msg.ID, nil
}

func (p *Publisher) PublishResult(ctx context.Context, poll *entities.Poll, summary entities.ResultSummary) error {
	labelOrder := make([]string, 0, len(poll.Options))
	for _, opt := range poll.Options {
		labelOrder = append(labelOrder, opt.Label)
	}
	embed := pkgdiscord.BuildResultEmbed(summary, labelOrder)
	_, err := p.session.ChannelMessageSendComplex(poll.ChannelID, &discordgo.MessageSend{
		Embeds:    []*discordgo.MessageEmbed{embed},
		Reference: &discordgo.MessageReference{MessageID: poll.MessageID, ChannelID: poll.ChannelID},
	})
	if err != nil {
		return fmt.Errorf("send result message: %w", err)
	}
	return nil
}

func (p *Publisher) DeletePollMessage(ctx context.Context, channelID, messageID string) error {
	if err := p.session.ChannelMessageDelete(channelID, messageID); err != nil {
		return fmt.Errorf("delete poll message: %w", err)
	}
	return nil
}

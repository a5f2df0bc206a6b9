package discord

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"brettbot/internal/domain"
	pkgdiscord "brettbot/pkg/discord"
)

const (
	createCommandName = "umfrage"
	closeCommandName  = "Umfrage schließen"
)

// HandleCreateCommand handles /umfrage: builds next week's date poll, posts it
// and confirms ephemerally. The optional "start" option moves the window.
func (h *Handler) HandleCreateCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := string(i.Locale)

	// Posting the poll involves a holiday fetch plus message round-trips,
	// so acknowledge first and answer via followup.
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	}); err != nil {
		log.Printf("❌ Deferring poll command failed: %v", err)
		return
	}

	var windowStart time.Time
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "start" {
			parsed, err := pkgdiscord.ParseWindowStart(opt.StringValue())
			if err != nil {
				h.followUp(s, i, h.translator.T(locale, pkgdiscord.MessageKey(err), nil))
				return
			}
			windowStart = parsed
		}
	}

	if _, err := h.pollUseCase.CreatePoll(context.Background(), i.ChannelID, interactionUserID(i), windowStart); err != nil {
		log.Printf("❌ Poll creation failed (channel=%s): %v", i.ChannelID, err)
		h.followUp(s, i, h.translator.T(locale, pkgdiscord.MessageKey(err), nil))
		return
	}

	h.followUp(s, i, h.translator.T(locale, "poll_created", nil))
}

// HandleCloseCommand handles the "Umfrage schließen" message command. Only
// polls authored by the bot can be closed; Discord's default permissions
// decide who may invoke the command at all.
func (h *Handler) HandleCloseCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := string(i.Locale)
	data := i.ApplicationCommandData()
	targetID := data.TargetID

	if msg, ok := data.Resolved.Messages[targetID]; ok {
		if msg.Author == nil || msg.Author.ID != s.State.User.ID {
			respondEphemeral(s, i.Interaction, h.translator.T(locale, pkgdiscord.MessageKey(domain.ErrNotBotPoll), nil))
			return
		}
	}

	ctx := context.Background()
	alreadyClosed := false
	if poll, err := h.pollUseCase.GetPoll(ctx, targetID); err == nil {
		alreadyClosed = poll.Status == domain.StatusClosed
	}

	if _, err := h.pollUseCase.ClosePoll(ctx, targetID, interactionUserID(i)); err != nil {
		if !errors.Is(err, domain.ErrPollNotFound) {
			log.Printf("❌ Closing poll %s failed: %v", targetID, err)
		}
		respondEphemeral(s, i.Interaction, h.translator.T(locale, pkgdiscord.MessageKey(err), nil))
		return
	}

	key := "close_success"
	if alreadyClosed {
		key = "close_already"
	}
	respondEphemeral(s, i.Interaction, h.translator.T(locale, key, nil))
	h.refreshPollMessage(ctx, s, targetID)
}

func (h *Handler) followUp(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	}); err != nil {
		log.Printf("❌ Followup message failed: %v", err)
	}
}

package discord

import (
	"context"
	"errors"
	"log"

	"github.com/bwmarrin/discordgo"

	"brettbot/internal/domain"
	"brettbot/internal/domain/entities"
)

// HandleReactionAdd turns a reaction add into a vote. Reactions with unknown
// emojis or on unknown messages are noise and ignored without logging.
func (h *Handler) HandleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.UserID == s.State.User.ID {
		return
	}
	ordinal, ok := domain.EmojiOrdinal(r.Emoji.Name)
	if !ok {
		return
	}
	ctx := context.Background()
	applied, dropped, err := h.pollUseCase.RecordVote(ctx, entities.VoteEvent{
		PollID:  r.MessageID,
		UserID:  r.UserID,
		Ordinal: ordinal,
		Action:  entities.VoteAdd,
	})
	if err != nil {
		logVoteError(r.MessageID, r.UserID, err)
		return
	}
	if dropped && h.stripClosedReactions {
		if err := s.MessageReactionRemove(r.ChannelID, r.MessageID, r.Emoji.APIName(), r.UserID); err != nil {
			log.Printf("⚠️ Stripping reaction on closed poll %s failed: %v", r.MessageID, err)
		}
	}
	if applied {
		h.refreshPollMessage(ctx, s, r.MessageID)
	}
}

// HandleReactionRemove turns a reaction removal into a vote retraction.
func (h *Handler) HandleReactionRemove(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
	if r.UserID == s.State.User.ID {
		return
	}
	ordinal, ok := domain.EmojiOrdinal(r.Emoji.Name)
	if !ok {
		return
	}
	ctx := context.Background()
	applied, _, err := h.pollUseCase.RecordVote(ctx, entities.VoteEvent{
		PollID:  r.MessageID,
		UserID:  r.UserID,
		Ordinal: ordinal,
		Action:  entities.VoteRemove,
	})
	if err != nil {
		logVoteError(r.MessageID, r.UserID, err)
		return
	}
	if applied {
		h.refreshPollMessage(ctx, s, r.MessageID)
	}
}

// HandleMessageDelete reaps the stored poll when its backing message is gone;
// later events for the id degrade to no-ops.
func (h *Handler) HandleMessageDelete(s *discordgo.Session, m *discordgo.MessageDelete) {
	if err := h.pollUseCase.ReapPoll(context.Background(), m.ID); err != nil {
		log.Printf("❌ Reaping poll %s failed: %v", m.ID, err)
	}
}

func logVoteError(messageID, userID string, err error) {
	if errors.Is(err, domain.ErrCorruptedVotes) {
		log.Printf("❌ Vote aborted, poll %s has corrupted voter state (user=%s): %v", messageID, userID, err)
		return
	}
	log.Printf("❌ Vote on poll %s failed (user=%s): %v", messageID, userID, err)
}

package input

import (
	"context"
	"time"

	"brettbot/internal/domain/entities"
)

// PollUseCase is the poll lifecycle: create, vote intake, one-shot close.
type PollUseCase interface {
	// CreatePoll publishes and persists a new poll. A zero windowStart
	// defaults to the next Monday.
	CreatePoll(ctx context.Context, channelID, creatorID string, windowStart time.Time) (*entities.Poll, error)
	// RecordVote applies a reaction event. applied reports whether the
	// tally changed; dropped reports a vote rejected because the poll is
	// already closed.
	RecordVote(ctx context.Context, event entities.VoteEvent) (applied, dropped bool, err error)
	// ClosePoll finalizes a poll. Closing an already closed poll returns
	// the cached summary unchanged.
	ClosePoll(ctx context.Context, messageID, requesterID string) (*entities.ResultSummary, error)
	GetPoll(ctx context.Context, messageID string) (*entities.Poll, error)
	// ReapPoll discards the stored state of a poll whose backing message
	// is gone.
	ReapPoll(ctx context.Context, messageID string) error
	// RehydrateOpenPolls reloads open polls from storage after a restart.
	RehydrateOpenPolls(ctx context.Context) ([]entities.Poll, error)
}

package output

import (
	"context"

	"brettbot/internal/domain/entities"
)

// PollPublisher is the presentation side of the poll lifecycle: it posts the
// poll message (whose id becomes the poll id), announces results and removes
// messages when creation has to be rolled back.
type PollPublisher interface {
	PublishPoll(ctx context.Context, channelID string, display entities.PollDisplay) (messageID string, err error)
	PublishResult(ctx context.Context, poll *entities.Poll, summary entities.ResultSummary) error
	DeletePollMessage(ctx context.Context, channelID, messageID string) error
}

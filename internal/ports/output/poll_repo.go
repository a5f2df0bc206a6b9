package output

import (
	"context"

	"brettbot/internal/domain/entities"
)

// PollRepository is the durable poll store, keyed by message id. Implementations
// must reload polls byte-identical across restarts; option labels and voter
// sets are never derived anew at load time.
type PollRepository interface {
	// Create persists a new poll; domain.ErrPollExists on duplicate id.
	Create(ctx context.Context, poll *entities.Poll) error
	// FindByMessageID returns a copy of the poll or domain.ErrPollNotFound.
	FindByMessageID(ctx context.Context, messageID string) (*entities.Poll, error)
	// Update applies mutate to the current state and persists the result
	// atomically. A mutator error aborts the write and is returned as-is;
	// no partial update is ever visible. Updates are serialized per id.
	Update(ctx context.Context, messageID string, mutate func(*entities.Poll) error) (*entities.Poll, error)
	// ListOpen returns every poll with status open.
	ListOpen(ctx context.Context) ([]entities.Poll, error)
	Delete(ctx context.Context, messageID string) error
}

package input

import (
	"context"

	"brettbot/internal/domain/entities"
)

// VoteUseCase converts raw reaction events into tally mutations.
type VoteUseCase interface {
	Apply(ctx context.Context, event entities.VoteEvent) (applied, dropped bool, err error)
}

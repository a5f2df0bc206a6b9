package application

import (
	"context"
	"errors"
	"fmt"

	"brettbot/internal/domain"
	"brettbot/internal/domain/entities"
	"brettbot/internal/ports/output"
)

// errNoChange aborts a repository update without persisting anything; used
// when an event turns out to be a no-op against the current state.
var errNoChange = errors.New("no change")

// VoteService turns raw reaction events into tally mutations. Reaction
// sources are untrusted and noisy: events for unknown polls or ordinals are
// silently dropped, duplicates are idempotent, and events against a closed
// poll never touch the frozen voter sets.
type VoteService struct {
	pollRepo output.PollRepository
}

func NewVoteService(pollRepo output.PollRepository) *VoteService {
	return &VoteService{pollRepo: pollRepo}
}

// Apply mutates the voter set addressed by event. applied reports whether the
// stored tally changed; dropped reports a vote rejected because the poll is
// closed, so the caller can decide whether to strip the originating reaction.
func (s *VoteService) Apply(ctx context.Context, event entities.VoteEvent) (applied, dropped bool, err error) {
	_, err = s.pollRepo.Update(ctx, event.PollID, func(poll *entities.Poll) error {
		if poll.Status == domain.StatusClosed {
			dropped = true
			return errNoChange
		}
		if !poll.HasOption(event.Ordinal) {
			return errNoChange
		}
		if err := checkVoterState(poll); err != nil {
			return err
		}
		switch event.Action {
		case entities.VoteAdd:
			applied = poll.AddVote(event.Ordinal, event.UserID)
		case entities.VoteRemove:
			applied = poll.RemoveVote(event.Ordinal, event.UserID)
		default:
			return errNoChange
		}
		if !applied {
			return errNoChange
		}
		return nil
	})
	if errors.Is(err, errNoChange) || errors.Is(err, domain.ErrPollNotFound) {
		return applied, dropped, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("apply vote: %w", err)
	}
	return applied, dropped, nil
}

// checkVoterState guards the tally against corrupted storage: a voter set
// under an ordinal without a matching option would silently skew the result,
// so the operation is aborted loudly instead.
func checkVoterState(poll *entities.Poll) error {
	for ordinal := range poll.Votes {
		if !poll.HasOption(ordinal) {
			return fmt.Errorf("%w: voter set for unknown option %d (poll %s)",
				domain.ErrCorruptedVotes, ordinal, poll.MessageID)
		}
	}
	return nil
}

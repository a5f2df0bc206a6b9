package memory

import (
	"context"
	"sync"

	"brettbot/internal/domain"
	"brettbot/internal/domain/entities"
	"brettbot/internal/ports/output"
)

var _ output.PollRepository = (*PollRepository)(nil)

// PollRepository is an in-memory poll store with the same contract as the
// PostgreSQL one. It backs the tests and DB-less local runs; state lives only
// as long as the process.
type PollRepository struct {
	mu    sync.RWMutex
	polls map[string]*entities.Poll
}

func NewPollRepository() *PollRepository {
	return &PollRepository{polls: make(map[string]*entities.Poll)}
}

func (r *PollRepository) Create(ctx context.Context, poll *entities.Poll) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.polls[poll.MessageID]; ok {
		return domain.ErrPollExists
	}
	r.polls[poll.MessageID] = poll.Clone()
	return nil
}

func (r *PollRepository) FindByMessageID(ctx context.Context, messageID string) (*entities.Poll, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	poll, ok := r.polls[messageID]
	if !ok {
		return nil, domain.ErrPollNotFound
	}
	return poll.Clone(), nil
}

// Update mutates a private copy and swaps it in only on success, so a failed
// mutator leaves the stored state untouched and concurrent readers never see
// a partial update.
func (r *PollRepository) Update(ctx context.Context, messageID string, mutate func(*entities.Poll) error) (*entities.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	poll, ok := r.polls[messageID]
	if !ok {
		return nil, domain.ErrPollNotFound
	}
	next := poll.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}
	r.polls[messageID] = next
	return next.Clone(), nil
}

func (r *PollRepository) ListOpen(ctx context.Context) ([]entities.Poll, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var polls []entities.Poll
	for _, poll := range r.polls {
		if poll.Status == domain.StatusOpen {
			polls = append(polls, *poll.Clone())
		}
	}
	return polls, nil
}

func (r *PollRepository) Delete(ctx context.Context, messageID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.polls[messageID]; !ok {
		return domain.ErrPollNotFound
	}
	delete(r.polls, messageID)
	return nil
}

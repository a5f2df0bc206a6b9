package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"brettbot/internal/domain"
	"brettbot/internal/domain/entities"
	"brettbot/internal/ports/input"
	"brettbot/internal/ports/output"
)

var _ input.PollUseCase = (*PollService)(nil)

// PollService orchestrates the poll lifecycle: creation (posting and
// persisting are one logical unit), vote intake and one-shot finalization.
// All mutators for the same poll run under a keyed lock; different polls are
// never serialized against each other.
type PollService struct {
	pollRepo     output.PollRepository
	votes        input.VoteUseCase
	publisher    output.PollPublisher
	holidays     output.HolidayProvider
	questionText string
	locks        *pollLocks
	now          func() time.Time
}

func NewPollService(
	pollRepo output.PollRepository,
	votes input.VoteUseCase,
	publisher output.PollPublisher,
	holidays output.HolidayProvider,
	questionText string,
) *PollService {
	return &PollService{
		pollRepo:     pollRepo,
		votes:        votes,
		publisher:    publisher,
		holidays:     holidays,
		questionText: questionText,
		locks:        newPollLocks(),
		now:          time.Now,
	}
}

// CreatePoll generates the option set for the week starting at windowStart
// (next Monday when zero), publishes the poll message and persists the state
// under the message id. If persisting fails the published message is deleted
// again so no half-created poll survives.
func (s *PollService) CreatePoll(ctx context.Context, channelID, creatorID string, windowStart time.Time) (*entities.Poll, error) {
	now := s.now()
	if windowStart.IsZero() {
		windowStart = domain.NextMonday(now)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if windowStart.Before(today) {
		return nil, domain.ErrWindowInPast
	}

	holidays, err := s.holidays.Holidays(ctx)
	if err != nil {
		// A poll without holiday labels beats no poll at all.
		log.Printf("⚠️ Holiday calendar unavailable, using weekday labels only: %v", err)
		holidays = map[string]string{}
	}
	options := domain.GenerateOptions(windowStart, holidays)

	question := s.renderQuestion(windowStart)
	display := entities.PollDisplay{Question: question}
	for _, opt := range options {
		display.Options = append(display.Options, entities.DisplayOption{
			Label:    opt.Label,
			EmojiKey: opt.EmojiKey,
		})
	}

	messageID, err := s.publisher.PublishPoll(ctx, channelID, display)
	if err != nil {
		return nil, fmt.Errorf("publish poll: %w", err)
	}

	poll := &entities.Poll{
		MessageID: messageID,
		ChannelID: channelID,
		CreatorID: creatorID,
		Question:  question,
		Options:   options,
		Votes:     make(map[int][]string),
		Status:    domain.StatusOpen,
		CreatedAt: now,
	}
	if err := s.pollRepo.Create(ctx, poll); err != nil {
		if delErr := s.publisher.DeletePollMessage(ctx, channelID, messageID); delErr != nil {
			log.Printf("❌ Rollback of poll message %s failed: %v", messageID, delErr)
		}
		return nil, fmt.Errorf("create poll: %w", err)
	}
	return poll, nil
}

// renderQuestion substitutes the ISO calendar week of the poll window into the
// configured question text ({kw} placeholder).
func (s *PollService) renderQuestion(windowStart time.Time) string {
	_, week := windowStart.ISOWeek()
	return strings.ReplaceAll(s.questionText, "{kw}", strconv.Itoa(week))
}

// RecordVote applies a reaction event under the poll's keyed lock, so votes
// can never interleave with a running finalization.
func (s *PollService) RecordVote(ctx context.Context, event entities.VoteEvent) (applied, dropped bool, err error) {
	lock := s.locks.get(event.PollID)
	lock.Lock()
	defer lock.Unlock()
	return s.votes.Apply(ctx, event)
}

// ClosePoll finalizes a poll exactly once. The status flip is persisted before
// the summary is computed, so a crash in between can be retried safely: the
// retry re-runs only the summary step, never the flip, and never double-counts.
// Closing an already finalized poll returns the cached summary unchanged.
func (s *PollService) ClosePoll(ctx context.Context, messageID, requesterID string) (*entities.ResultSummary, error) {
	lock := s.locks.get(messageID)
	lock.Lock()
	defer lock.Unlock()

	poll, err := s.pollRepo.FindByMessageID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if poll.Status == domain.StatusClosed && poll.Summary != nil {
		return poll.Summary, nil
	}

	if poll.Status == domain.StatusOpen {
		if _, err := s.pollRepo.Update(ctx, messageID, func(p *entities.Poll) error {
			p.Status = domain.StatusClosed
			p.ClosedAt = s.now()
			p.ClosedBy = requesterID
			return nil
		}); err != nil {
			return nil, fmt.Errorf("close poll: %w", err)
		}
	}

	// Status is closed but no summary is cached yet (first close, or a retry
	// after a crash between flip and announcement).
	var summary entities.ResultSummary
	computed := true
	if _, err := s.pollRepo.Update(ctx, messageID, func(p *entities.Poll) error {
		if p.Summary != nil {
			summary = *p.Summary
			computed = false
			return errNoChange
		}
		summary = p.Summarize()
		p.Summary = &summary
		return nil
	}); err != nil && !errors.Is(err, errNoChange) {
		return nil, fmt.Errorf("store poll summary: %w", err)
	}

	if computed {
		if err := s.publisher.PublishResult(ctx, poll, summary); err != nil {
			log.Printf("❌ Result announcement for poll %s failed: %v", messageID, err)
		}
	}
	return &summary, nil
}

func (s *PollService) GetPoll(ctx context.Context, messageID string) (*entities.Poll, error) {
	return s.pollRepo.FindByMessageID(ctx, messageID)
}

// ReapPoll discards a poll whose backing message was deleted. Later events for
// the id degrade to no-ops; nothing is leaked into active processing.
func (s *PollService) ReapPoll(ctx context.Context, messageID string) error {
	lock := s.locks.get(messageID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.pollRepo.Delete(ctx, messageID); err != nil {
		if errors.Is(err, domain.ErrPollNotFound) {
			return nil
		}
		return fmt.Errorf("reap poll: %w", err)
	}
	s.locks.release(messageID)
	return nil
}

// RehydrateOpenPolls reloads open polls on startup. Stored state is the source
// of truth: nothing is recomputed from today's date.
func (s *PollService) RehydrateOpenPolls(ctx context.Context) ([]entities.Poll, error) {
	polls, err := s.pollRepo.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("list open polls: %w", err)
	}
	log.Printf("✅ %d open poll(s) rehydrated from storage.", len(polls))
	return polls, nil
}

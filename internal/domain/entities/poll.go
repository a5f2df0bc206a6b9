package entities

import (
	"sort"
	"time"
)

// PollOption is one selectable date within a poll. Ordinal is the day offset
// from the poll window start and stays stable for the poll's lifetime.
type PollOption struct {
	Ordinal  int    `json:"ordinal"`
	Label    string `json:"label"`
	EmojiKey string `json:"emoji_key"`
}

// ResultSummary is the one-time result of a closed poll. Winners hold the
// labels of every option tied for the maximum count, in ordinal order.
type ResultSummary struct {
	Winners []string       `json:"winners"`
	Counts  map[string]int `json:"counts"`
}

// Poll is a date-scheduling poll backed by a Discord message. The message id
// doubles as the poll id. Votes maps an option ordinal to the sorted set of
// user ids currently selecting it; a user may appear under several options.
type Poll struct {
	MessageID string
	ChannelID string
	CreatorID string
	Question  string
	Options   []PollOption
	Votes     map[int][]string
	Status    string
	CreatedAt time.Time
	ClosedAt  time.Time // zero = still open
	ClosedBy  string
	Summary   *ResultSummary // set once, at first successful close
}

// AddVote inserts userID into the voter set of ordinal. It reports whether the
// set changed; a repeated add is a no-op.
func (p *Poll) AddVote(ordinal int, userID string) bool {
	voters := p.Votes[ordinal]
	i := sort.SearchStrings(voters, userID)
	if i < len(voters) && voters[i] == userID {
		return false
	}
	voters = append(voters, "")
	copy(voters[i+1:], voters[i:])
	voters[i] = userID
	if p.Votes == nil {
		p.Votes = make(map[int][]string)
	}
	p.Votes[ordinal] = voters
	return true
}

// RemoveVote deletes userID from the voter set of ordinal. It reports whether
// the set changed; removing an absent voter is a no-op.
func (p *Poll) RemoveVote(ordinal int, userID string) bool {
	voters := p.Votes[ordinal]
	i := sort.SearchStrings(voters, userID)
	if i >= len(voters) || voters[i] != userID {
		return false
	}
	p.Votes[ordinal] = append(voters[:i], voters[i+1:]...)
	return true
}

// HasOption reports whether ordinal maps to an existing option.
func (p *Poll) HasOption(ordinal int) bool {
	return ordinal >= 0 && ordinal < len(p.Options)
}

// VoteCount returns the current number of voters on ordinal.
func (p *Poll) VoteCount(ordinal int) int {
	return len(p.Votes[ordinal])
}

// Summarize computes the result from the current voter sets. Winners are all
// options whose count equals the maximum, in ordinal order; ties are never
// broken arbitrarily.
func (p *Poll) Summarize() ResultSummary {
	summary := ResultSummary{Counts: make(map[string]int, len(p.Options))}
	maxCount := 0
	for _, opt := range p.Options {
		count := len(p.Votes[opt.Ordinal])
		summary.Counts[opt.Label] = count
		if count > maxCount {
			maxCount = count
		}
	}
	for _, opt := range p.Options {
		if len(p.Votes[opt.Ordinal]) == maxCount {
			summary.Winners = append(summary.Winners, opt.Label)
		}
	}
	return summary
}

// Clone returns a deep copy so callers can hand out polls without exposing
// shared mutable state.
func (p *Poll) Clone() *Poll {
	clone := *p
	clone.Options = append([]PollOption(nil), p.Options...)
	clone.Votes = make(map[int][]string, len(p.Votes))
	for ordinal, voters := range p.Votes {
		clone.Votes[ordinal] = append([]string(nil), voters...)
	}
	if p.Summary != nil {
		s := *p.Summary
		s.Winners = append([]string(nil), p.Summary.Winners...)
		s.Counts = make(map[string]int, len(p.Summary.Counts))
		for label, count := range p.Summary.Counts {
			s.Counts[label] = count
		}
		clone.Summary = &s
	}
	return &clone
}

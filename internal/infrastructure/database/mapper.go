package database

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"brettbot/internal/domain/entities"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// timeToPgtypeTimestamptz maps zero time to NULL.
func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// Options, voter sets and the cached summary are stored as JSONB so a reload
// yields them verbatim; they are never regenerated from the calendar.

func encodeOptions(options []entities.PollOption) ([]byte, error) {
	data, err := json.Marshal(options)
	if err != nil {
		return nil, fmt.Errorf("encode options: %w", err)
	}
	return data, nil
}

func decodeOptions(data []byte) ([]entities.PollOption, error) {
	var options []entities.PollOption
	if err := json.Unmarshal(data, &options); err != nil {
		return nil, fmt.Errorf("decode options: %w", err)
	}
	return options, nil
}

func encodeVotes(votes map[int][]string) ([]byte, error) {
	if votes == nil {
		votes = map[int][]string{}
	}
	data, err := json.Marshal(votes)
	if err != nil {
		return nil, fmt.Errorf("encode votes: %w", err)
	}
	return data, nil
}

func decodeVotes(data []byte) (map[int][]string, error) {
	votes := map[int][]string{}
	if err := json.Unmarshal(data, &votes); err != nil {
		return nil, fmt.Errorf("decode votes: %w", err)
	}
	return votes, nil
}

func encodeSummary(summary *entities.ResultSummary) ([]byte, error) {
	if summary == nil {
		return nil, nil
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("encode summary: %w", err)
	}
	return data, nil
}

func decodeSummary(data []byte) (*entities.ResultSummary, error) {
	if len(data) == 0 {
		return nil, nil
	}
	summary := &entities.ResultSummary{}
	if err := json.Unmarshal(data, summary); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	return summary, nil
}

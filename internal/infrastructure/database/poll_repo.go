package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"brettbot/internal/domain"
	"brettbot/internal/domain/entities"
	"brettbot/internal/ports/output"
)

var _ output.PollRepository = (*PollRepository)(nil)

// PollRepository is the PostgreSQL poll store. Per-id serialization of
// Update comes from SELECT ... FOR UPDATE row locks; unrelated polls never
// contend.
type PollRepository struct {
	pool *pgxpool.Pool
}

func NewPollRepository(pool *pgxpool.Pool) *PollRepository {
	return &PollRepository{pool: pool}
}

const pollColumns = "message_id, channel_id, creator_id, question, options, votes, status, summary, created_at, closed_at, closed_by"

func (r *PollRepository) Create(ctx context.Context, poll *entities.Poll) error {
	options, err := encodeOptions(poll.Options)
	if err != nil {
		return err
	}
	votes, err := encodeVotes(poll.Votes)
	if err != nil {
		return err
	}
	summary, err := encodeSummary(poll.Summary)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO polls (`+pollColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		poll.MessageID, poll.ChannelID, poll.CreatorID, poll.Question, options, votes,
		poll.Status, summary, timeToPgtypeTimestamptz(poll.CreatedAt),
		timeToPgtypeTimestamptz(poll.ClosedAt), poll.ClosedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrPollExists
		}
		return fmt.Errorf("create poll: %w", err)
	}
	return nil
}

func (r *PollRepository) FindByMessageID(ctx context.Context, messageID string) (*entities.Poll, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+pollColumns+` FROM polls WHERE message_id = $1`, messageID)
	poll, err := scanPoll(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("get poll by message id: %w", err)
	}
	return poll, nil
}

// Update runs mutate inside a transaction holding the poll's row lock, so the
// read-modify-write is atomic and serialized per id. A mutator error rolls the
// transaction back and is returned unchanged; nothing partial ever commits.
func (r *PollRepository) Update(ctx context.Context, messageID string, mutate func(*entities.Poll) error) (*entities.Poll, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin update: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`SELECT `+pollColumns+` FROM polls WHERE message_id = $1 FOR UPDATE`, messageID)
	poll, err := scanPoll(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("read poll for update: %w", err)
	}

	if err := mutate(poll); err != nil {
		return nil, err
	}

	votes, err := encodeVotes(poll.Votes)
	if err != nil {
		return nil, err
	}
	summary, err := encodeSummary(poll.Summary)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx,
		`UPDATE polls SET votes = $2, status = $3, summary = $4, closed_at = $5, closed_by = $6
		 WHERE message_id = $1`,
		messageID, votes, poll.Status, summary,
		timeToPgtypeTimestamptz(poll.ClosedAt), poll.ClosedBy,
	); err != nil {
		return nil, fmt.Errorf("update poll: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit update: %w", err)
	}
	return poll, nil
}

func (r *PollRepository) ListOpen(ctx context.Context) ([]entities.Poll, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+pollColumns+` FROM polls WHERE status = $1 ORDER BY created_at`,
		domain.StatusOpen)
	if err != nil {
		return nil, fmt.Errorf("list open polls: %w", err)
	}
	defer rows.Close()

	var polls []entities.Poll
	for rows.Next() {
		poll, err := scanPoll(rows)
		if err != nil {
			return nil, fmt.Errorf("scan open poll: %w", err)
		}
		polls = append(polls, *poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list open polls: %w", err)
	}
	return polls, nil
}

func (r *PollRepository) Delete(ctx context.Context, messageID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM polls WHERE message_id = $1`, messageID)
	if err != nil {
		return fmt.Errorf("delete poll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPollNotFound
	}
	return nil
}

func scanPoll(row pgx.Row) (*entities.Poll, error) {
	var (
		poll      entities.Poll
		options   []byte
		votes     []byte
		summary   []byte
		createdAt pgtype.Timestamptz
		closedAt  pgtype.Timestamptz
	)
	if err := row.Scan(&poll.MessageID, &poll.ChannelID, &poll.CreatorID, &poll.Question,
		&options, &votes, &poll.Status, &summary, &createdAt, &closedAt, &poll.ClosedBy); err != nil {
		return nil, err
	}
	var err error
	if poll.Options, err = decodeOptions(options); err != nil {
		return nil, err
	}
	if poll.Votes, err = decodeVotes(votes); err != nil {
		return nil, err
	}
	if poll.Summary, err = decodeSummary(summary); err != nil {
		return nil, err
	}
	poll.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	poll.ClosedAt = pgtypeTimestamptzToTime(closedAt)
	return &poll, nil
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// MessageRepository defines the persistence interface for contact messages.
type MessageRepository interface {
	// List returns all messages, newest first.
	List(ctx context.Context) ([]model.Message, error)

	// Append stores a single new message and populates msg.ID.
	Append(ctx context.Context, msg *model.Message) error

	// ReplaceAll swaps the whole collection for msgs. The delete and
	// the inserts are not wrapped in a transaction; a crash in between
	// loses messages (accepted for this low-traffic admin tool).
	ReplaceAll(ctx context.Context, msgs []model.Message) error

	// Delete removes one message by id. Absent ids are a no-op.
	Delete(ctx context.Context, id string) error
}

// PgMessageRepository stores each message as a JSONB document keyed by
// a store-assigned uuid.
type PgMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPgMessageRepository creates a PgMessageRepository backed by the given pool.
func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

var _ MessageRepository = (*PgMessageRepository)(nil)

// List returns all messages ordered by insertion time, newest first.
func (r *PgMessageRepository) List(ctx context.Context) ([]model.Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, doc FROM messages ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		var id string
		var doc []byte
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, err
		}
		var m model.Message
		if err := json.Unmarshal(doc, &m); err != nil {
			return nil, fmt.Errorf("unmarshal message %s: %w", id, err)
		}
		m.ID = id
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// Append inserts one message with a freshly assigned id.
func (r *PgMessageRepository) Append(ctx context.Context, msg *model.Message) error {
	msg.ID = uuid.NewString()
	doc, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO messages (id, doc) VALUES ($1, $2)`, msg.ID, doc)
	return err
}

// ReplaceAll deletes every message and re-inserts msgs in order.
// Messages without an id get one assigned.
func (r *PgMessageRepository) ReplaceAll(ctx context.Context, msgs []model.Message) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM messages`); err != nil {
		return err
	}
	for i := range msgs {
		if msgs[i].ID == "" {
			msgs[i].ID = uuid.NewString()
		}
		doc, err := json.Marshal(msgs[i])
		if err != nil {
			return fmt.Errorf("marshal message: %w", err)
		}
		if _, err := r.pool.Exec(ctx,
			`INSERT INTO messages (id, doc) VALUES ($1, $2)`, msgs[i].ID, doc); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the message with the given id if it exists.
func (r *PgMessageRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	return err
}

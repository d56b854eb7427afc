package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// MessageService defines the business logic for contact messages.
type MessageService interface {
	// List returns all messages, newest first.
	List(ctx context.Context) ([]model.Message, error)

	// Submit stores a new contact-form message. The implementation
	// trims fields and stamps Date and Read=false; msg.ID is populated.
	Submit(ctx context.Context, msg *model.Message) error

	// ReplaceAll swaps the entire collection (admin read-flag edits and
	// bulk deletes arrive this way).
	ReplaceAll(ctx context.Context, msgs []model.Message) error

	// Delete removes one message. Absent ids do not error.
	Delete(ctx context.Context, id string) error
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// messageServiceImpl is the production implementation of MessageService.
type messageServiceImpl struct {
	repo repository.MessageRepository
	now  func() time.Time
}

// NewMessageService creates a MessageService backed by the given repository.
func NewMessageService(repo repository.MessageRepository) MessageService {
	return &messageServiceImpl{repo: repo, now: time.Now}
}

func (s *messageServiceImpl) List(ctx context.Context) ([]model.Message, error) {
	return s.repo.List(ctx)
}

// Submit trims the submitted fields, stamps the date (YYYY-MM-DD, UTC)
// and read=false, then appends the message.
func (s *messageServiceImpl) Submit(ctx context.Context, msg *model.Message) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)
	msg.Date = s.now().UTC().Format("2006-01-02")
	msg.Read = false
	return s.repo.Append(ctx, msg)
}

func (s *messageServiceImpl) ReplaceAll(ctx context.Context, msgs []model.Message) error {
	return s.repo.ReplaceAll(ctx, msgs)
}

func (s *messageServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

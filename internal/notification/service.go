package notification

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Notify implements core.Notifier for the order and review flows.
func (s *Service) Notify(ctx context.Context, userID, kind, message string) error {
	if userID == "" || message == "" {
		return errors.New("missing notification fields")
	}

	return s.repo.Create(ctx, &Notification{
		UserID:  userID,
		Type:    kind,
		Message: message,
	})
}

func (s *Service) List(ctx context.Context, userID string) ([]Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.repo.UnreadCount(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, id int, userID string) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *Service) MarkAllRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllRead(ctx, userID)
}

package notification

import (
	"context"

	"github.com/strivehr/perform-backend-go/internal/domain/notification"
	"github.com/strivehr/perform-backend-go/internal/pkg/sse"
)

// Service persists notifications and fans them out to live SSE
// subscribers. It satisfies notification.Repository so producers can
// stay unaware of the streaming side.
type Service struct {
	notification.Repository
	hub *sse.Hub
}

func NewService(repo notification.Repository, hub *sse.Hub) *Service {
	return &Service{Repository: repo, hub: hub}
}

func (s *Service) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	created, err := s.Repository.Create(ctx, n)
	if err != nil {
		return notification.Notification{}, err
	}
	if s.hub != nil {
		s.hub.Publish(created.UserID, sse.Event{
			UserID: created.UserID,
			Event:  string(created.Type),
			Data:   created,
		})
	}
	return created, nil
}

func (s *Service) List(ctx context.Context, userID string, unreadOnly bool) ([]notification.Notification, error) {
	return s.Repository.ListByUser(ctx, userID, unreadOnly, 50)
}

// Subscribe attaches a live listener for the user's notifications.
func (s *Service) Subscribe(userID string) (chan sse.Event, func()) {
	return s.hub.Subscribe(userID)
}

package eventRepo

import (
	"context"
	"time"

	"eventconnect/models"
)

// EventRepository defines data access for discovery events.
type EventRepository interface {
	GetAll(ctx context.Context) ([]models.Event, error)
	GetUpcoming(ctx context.Context, now time.Time) ([]models.Event, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	GetByCategory(ctx context.Context, category string) ([]models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Count(ctx context.Context) (int64, error)
}

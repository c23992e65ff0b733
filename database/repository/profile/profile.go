package profileRepo

import (
	"context"

	"eventconnect/models"
)

// ProfileRepository defines data access for gamification profiles.
// GetByUserID returns (nil, nil) when the user has no profile yet; seeding a
// fresh one is the service's job.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error)
	Save(ctx context.Context, profile *models.UserProfile) error
}

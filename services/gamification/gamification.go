package gamification

import (
	"context"
	"fmt"
	"time"

	profileRepo "eventconnect/database/repository/profile"
	"eventconnect/models"
)

// Profile is the API-facing view of a user's gamification state.
type Profile struct {
	models.UserProfile
	Level     models.UserLevel  `json:"level"`
	NextLevel *models.UserLevel `json:"nextLevel,omitempty"`
}

// GamificationService exposes profile reads and action recording.
type GamificationService interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	RecordAction(ctx context.Context, userID, action string) (*models.ActionResult, error)
}

// DefaultGamificationService evaluates actions against persisted profiles.
type DefaultGamificationService struct {
	Repo profileRepo.ProfileRepository
	Now  func() time.Time
}

func NewDefaultGamificationService(repo profileRepo.ProfileRepository) *DefaultGamificationService {
	return &DefaultGamificationService{Repo: repo, Now: time.Now}
}

// GetProfile loads the user's profile, seeding and persisting a fresh one on
// first contact.
func (s *DefaultGamificationService) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	profile, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Profile{
		UserProfile: *profile,
		Level:       LevelForPoints(profile.TotalPoints),
		NextLevel:   NextLevel(profile.TotalPoints),
	}, nil
}

// RecordAction applies one action and persists the updated profile.
func (s *DefaultGamificationService) RecordAction(ctx context.Context, userID, action string) (*models.ActionResult, error) {
	profile, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := ApplyAction(profile, action, s.Now())
	if result.PointsEarned > 0 || len(result.NewAchievements) > 0 {
		if err := s.Repo.Save(ctx, profile); err != nil {
			return nil, fmt.Errorf("failed to save profile for user %s: %w", userID, err)
		}
	}
	return &result, nil
}

func (s *DefaultGamificationService) load(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile for user %s: %w", userID, err)
	}
	if profile == nil {
		profile = NewProfile(userID, s.Now())
		if err := s.Repo.Save(ctx, profile); err != nil {
			return nil, fmt.Errorf("failed to seed profile for user %s: %w", userID, err)
		}
	}
	return profile, nil
}

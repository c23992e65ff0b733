package gamification

import (
	"context"
	"testing"
	"time"

	"eventconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestLevelForPointsTable(t *testing.T) {
	tests := []struct {
		points    int
		wantLevel int
		wantTitle string
	}{
		{0, 1, "Explorador"},
		{49, 1, "Explorador"},
		{50, 2, "Aventurero"},
		{150, 3, "Entusiasta"},
		{499, 3, "Entusiasta"},
		{500, 5, "Influencer"},
		{1500, 10, "Embajador"},
		{5000, 20, "Leyenda"},
		{999999, 20, "Leyenda"},
	}
	for _, tt := range tests {
		lvl := LevelForPoints(tt.points)
		assert.Equal(t, tt.wantLevel, lvl.Level, "points=%d", tt.points)
		assert.Equal(t, tt.wantTitle, lvl.Title, "points=%d", tt.points)
	}
}

func TestLevelForPointsMonotonicity(t *testing.T) {
	prev := LevelForPoints(0).Level
	for p := 1; p <= 6000; p += 7 {
		cur := LevelForPoints(p).Level
		assert.GreaterOrEqual(t, cur, prev, "points=%d", p)
		prev = cur
	}
}

func TestNextLevel(t *testing.T) {
	next := NextLevel(0)
	require.NotNil(t, next)
	assert.Equal(t, 2, next.Level)

	assert.Nil(t, NextLevel(5000), "top of the ladder has no next level")
}

func TestApplyActionFirstEventUnlocks(t *testing.T) {
	profile := NewProfile("u1", testNow)

	result := ApplyAction(profile, "attended_event", testNow)

	assert.Equal(t, 50, result.PointsEarned)
	require.Len(t, result.NewAchievements, 1)

	unlocked := result.NewAchievements[0]
	assert.Equal(t, "first_event", unlocked.ID)
	assert.True(t, unlocked.Unlocked)
	require.NotNil(t, unlocked.UnlockedAt)
	assert.Equal(t, testNow, *unlocked.UnlockedAt)
	assert.Equal(t, unlocked.MaxProgress, unlocked.Progress)

	// Action points plus the achievement's own bonus.
	assert.Equal(t, 75, result.TotalPoints)
	assert.Equal(t, profile.TotalPoints, result.TotalPoints)
}

func TestApplyActionUnknownActionIsNoOp(t *testing.T) {
	profile := NewProfile("u1", testNow)
	before := *profile

	result := ApplyAction(profile, "teleported", testNow)

	assert.Zero(t, result.PointsEarned)
	assert.Empty(t, result.NewAchievements)
	assert.Equal(t, before.TotalPoints, profile.TotalPoints)
	assert.Equal(t, before.Stats, profile.Stats)
}

func TestUnlockIsOneWay(t *testing.T) {
	profile := NewProfile("u1", testNow)

	first := ApplyAction(profile, "attended_event", testNow)
	require.Len(t, first.NewAchievements, 1)
	unlockedAt := *first.NewAchievements[0].UnlockedAt

	later := testNow.Add(48 * time.Hour)
	second := ApplyAction(profile, "attended_event", later)

	// first_event stays unlocked with its original timestamp.
	for _, a := range second.NewAchievements {
		assert.NotEqual(t, "first_event", a.ID)
	}
	for _, a := range profile.Achievements {
		if a.ID == "first_event" {
			assert.True(t, a.Unlocked)
			require.NotNil(t, a.UnlockedAt)
			assert.Equal(t, unlockedAt, *a.UnlockedAt)
		}
	}
}

func TestApplyActionProgressClampedToMax(t *testing.T) {
	profile := NewProfile("u1", testNow)

	for i := 0; i < 15; i++ {
		ApplyAction(profile, "attended_event", testNow)
	}

	for _, a := range profile.Achievements {
		assert.LessOrEqual(t, a.Progress, a.MaxProgress, a.ID)
		if a.Unlocked {
			assert.Equal(t, a.MaxProgress, a.Progress, a.ID)
		}
	}
}

func TestApplyActionLevelUp(t *testing.T) {
	profile := NewProfile("u1", testNow)

	// 50 action points + 25 for first_event crosses the level 2 threshold.
	result := ApplyAction(profile, "attended_event", testNow)

	assert.True(t, result.LeveledUp)
	assert.Equal(t, 2, result.Level.Level)
}

// fakeProfileRepo keeps profiles in a map.
type fakeProfileRepo struct {
	profiles map[string]*models.UserProfile
	saves    int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.UserProfile)}
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) Save(ctx context.Context, profile *models.UserProfile) error {
	cp := *profile
	f.profiles[profile.UserID] = &cp
	f.saves++
	return nil
}

func TestGetProfileSeedsNewUsers(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewDefaultGamificationService(repo)
	svc.Now = func() time.Time { return testNow }

	profile, err := svc.GetProfile(context.Background(), "newcomer")
	require.NoError(t, err)

	assert.Equal(t, "newcomer", profile.UserID)
	assert.Equal(t, 1, profile.Level.Level)
	assert.Len(t, profile.Achievements, len(achievementCatalog))
	assert.Equal(t, 1, repo.saves, "seeded profile must be persisted")
}

func TestRecordActionPersistsAndReports(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewDefaultGamificationService(repo)
	svc.Now = func() time.Time { return testNow }
	ctx := context.Background()

	result, err := svc.RecordAction(ctx, "u1", "created_event")
	require.NoError(t, err)
	assert.Equal(t, 100, result.PointsEarned)

	profile, err := svc.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, result.TotalPoints, profile.TotalPoints)
	assert.Equal(t, 1, profile.Stats.EventsCreated)
}

func TestRecordActionUnknownDoesNotPersist(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewDefaultGamificationService(repo)
	svc.Now = func() time.Time { return testNow }

	_, err := svc.RecordAction(context.Background(), "u1", "warp_drive")
	require.NoError(t, err)

	// One save for seeding, none for the no-op action.
	assert.Equal(t, 1, repo.saves)
}

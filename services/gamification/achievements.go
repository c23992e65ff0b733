package gamification

import (
	"time"

	"eventconnect/models"
)

// actionRewards maps a recorded user action to its point value and the stat
// counter it advances. Unknown actions are a no-op.
var actionRewards = map[string]struct {
	Points int
	Stat   string
}{
	"attended_event": {Points: 50, Stat: "eventsAttended"},
	"created_event":  {Points: 100, Stat: "eventsCreated"},
	"joined_tribe":   {Points: 30, Stat: "tribesJoined"},
	"early_join":     {Points: 25, Stat: "earlyJoins"},
	"shared_event":   {Points: 15, Stat: "eventsShared"},
	"reviewed_event": {Points: 20, Stat: "reviewsWritten"},
}

// achievementCatalog seeds a fresh profile. Progress and unlock state are
// per-user; everything else is fixed.
var achievementCatalog = []models.Achievement{
	{
		ID: "first_event", Title: "Primer Paso", Description: "Asiste a tu primer evento",
		Category: "attendance", Rarity: models.RarityCommon, Points: 25,
		Requirement: models.Requirement{Stat: "eventsAttended", Threshold: 1}, MaxProgress: 1,
	},
	{
		ID: "social_butterfly", Title: "Mariposa Social", Description: "Asiste a 10 eventos",
		Category: "attendance", Rarity: models.RarityRare, Points: 100,
		Requirement: models.Requirement{Stat: "eventsAttended", Threshold: 10}, MaxProgress: 10,
	},
	{
		ID: "event_creator", Title: "Creador", Description: "Crea tu primer evento",
		Category: "creation", Rarity: models.RarityCommon, Points: 50,
		Requirement: models.Requirement{Stat: "eventsCreated", Threshold: 1}, MaxProgress: 1,
	},
	{
		ID: "organizer_pro", Title: "Organizador Pro", Description: "Crea 5 eventos",
		Category: "creation", Rarity: models.RarityEpic, Points: 250,
		Requirement: models.Requirement{Stat: "eventsCreated", Threshold: 5}, MaxProgress: 5,
	},
	{
		ID: "tribe_member", Title: "Miembro de Tribu", Description: "Únete a tu primera tribu",
		Category: "community", Rarity: models.RarityCommon, Points: 25,
		Requirement: models.Requirement{Stat: "tribesJoined", Threshold: 1}, MaxProgress: 1,
	},
	{
		ID: "early_bird", Title: "Madrugador", Description: "Únete temprano a 5 eventos",
		Category: "engagement", Rarity: models.RarityRare, Points: 75,
		Requirement: models.Requirement{Stat: "earlyJoins", Threshold: 5}, MaxProgress: 5,
	},
	{
		ID: "influencer", Title: "Influencer", Description: "Comparte 20 eventos",
		Category: "engagement", Rarity: models.RarityLegendary, Points: 500,
		Requirement: models.Requirement{Stat: "eventsShared", Threshold: 20}, MaxProgress: 20,
	},
	{
		ID: "critic", Title: "Crítico", Description: "Escribe 10 reseñas",
		Category: "engagement", Rarity: models.RarityMythic, Points: 1000,
		Requirement: models.Requirement{Stat: "reviewsWritten", Threshold: 10}, MaxProgress: 10,
	},
}

// NewProfile seeds the gamification state for a user who has none yet.
func NewProfile(userID string, now time.Time) *models.UserProfile {
	achievements := make([]models.Achievement, len(achievementCatalog))
	copy(achievements, achievementCatalog)
	return &models.UserProfile{
		UserID:       userID,
		Achievements: achievements,
		UpdatedAt:    now,
	}
}

// ApplyAction records one user action against the profile, in place: it
// awards action points, advances the mapped counter, and unlocks any
// achievement whose requirement is newly met. Unlocks are one-way and award
// the achievement's own points on top. Unknown actions change nothing.
func ApplyAction(profile *models.UserProfile, action string, now time.Time) models.ActionResult {
	levelBefore := LevelForPoints(profile.TotalPoints)

	reward, known := actionRewards[action]
	if !known {
		return models.ActionResult{
			Action:          action,
			TotalPoints:     profile.TotalPoints,
			Level:           levelBefore,
			NewAchievements: []models.Achievement{},
		}
	}

	bumpStat(&profile.Stats, reward.Stat)
	profile.TotalPoints += reward.Points
	profile.UpdatedAt = now

	newlyUnlocked := evaluateAchievements(profile, now)
	levelAfter := LevelForPoints(profile.TotalPoints)

	return models.ActionResult{
		Action:          action,
		PointsEarned:    reward.Points,
		TotalPoints:     profile.TotalPoints,
		Level:           levelAfter,
		LeveledUp:       levelAfter.Level > levelBefore.Level,
		NewAchievements: newlyUnlocked,
	}
}

// evaluateAchievements refreshes progress from the stat counters and flips
// newly completed achievements to unlocked. Already unlocked ones are never
// touched again.
func evaluateAchievements(profile *models.UserProfile, now time.Time) []models.Achievement {
	unlocked := []models.Achievement{}
	for i := range profile.Achievements {
		a := &profile.Achievements[i]
		if a.Unlocked {
			continue
		}

		progress := statValue(profile.Stats, a.Requirement.Stat)
		if progress > a.MaxProgress {
			progress = a.MaxProgress
		}
		a.Progress = progress

		if progress >= a.Requirement.Threshold {
			a.Unlocked = true
			a.Progress = a.MaxProgress
			at := now
			a.UnlockedAt = &at
			profile.TotalPoints += a.Points
			unlocked = append(unlocked, *a)
		}
	}
	return unlocked
}

func bumpStat(stats *models.UserStats, stat string) {
	switch stat {
	case "eventsAttended":
		stats.EventsAttended++
	case "eventsCreated":
		stats.EventsCreated++
	case "tribesJoined":
		stats.TribesJoined++
	case "earlyJoins":
		stats.EarlyJoins++
	case "eventsShared":
		stats.EventsShared++
	case "reviewsWritten":
		stats.ReviewsWritten++
	}
}

func statValue(stats models.UserStats, stat string) int {
	switch stat {
	case "eventsAttended":
		return stats.EventsAttended
	case "eventsCreated":
		return stats.EventsCreated
	case "tribesJoined":
		return stats.TribesJoined
	case "earlyJoins":
		return stats.EarlyJoins
	case "eventsShared":
		return stats.EventsShared
	case "reviewsWritten":
		return stats.ReviewsWritten
	default:
		return 0
	}
}

package models

import "time"

// Achievement rarity tiers, lowest to highest.
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
	RarityMythic    = "mythic"
)

// Requirement is the numeric threshold an achievement tracks, keyed by the
// UserStats counter name (e.g. "eventsAttended").
type Requirement struct {
	Stat      string `bson:"stat" json:"stat"`
	Threshold int    `bson:"threshold" json:"threshold"`
}

// Achievement is a single unlockable badge. Unlocked is one-way: once true it
// never regresses, and Progress never exceeds MaxProgress.
type Achievement struct {
	ID          string      `bson:"id" json:"id"`
	Title       string      `bson:"title" json:"title"`
	Description string      `bson:"description" json:"description"`
	Category    string      `bson:"category" json:"category"`
	Rarity      string      `bson:"rarity" json:"rarity"`
	Points      int         `bson:"points" json:"points"`
	Requirement Requirement `bson:"requirement" json:"requirement"`
	Progress    int         `bson:"progress" json:"progress"`
	MaxProgress int         `bson:"max_progress" json:"maxProgress"`
	Unlocked    bool        `bson:"unlocked" json:"unlocked"`
	UnlockedAt  *time.Time  `bson:"unlocked_at,omitempty" json:"unlockedAt,omitempty"`
	Reward      string      `bson:"reward,omitempty" json:"reward,omitempty"`
}

// UserStats are the activity counters achievements evaluate against.
type UserStats struct {
	EventsAttended int `bson:"events_attended" json:"eventsAttended"`
	EventsCreated  int `bson:"events_created" json:"eventsCreated"`
	TribesJoined   int `bson:"tribes_joined" json:"tribesJoined"`
	EarlyJoins     int `bson:"early_joins" json:"earlyJoins"`
	EventsShared   int `bson:"events_shared" json:"eventsShared"`
	ReviewsWritten int `bson:"reviews_written" json:"reviewsWritten"`
}

// UserProfile is the persisted gamification state for one user.
type UserProfile struct {
	UserID       string        `bson:"user_id" json:"userId"`
	TotalPoints  int           `bson:"total_points" json:"totalPoints"`
	Stats        UserStats     `bson:"stats" json:"stats"`
	Achievements []Achievement `bson:"achievements" json:"achievements"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updatedAt"`
}

// UserLevel is one row of the fixed level ladder.
type UserLevel struct {
	Level          int      `json:"level"`
	Title          string   `json:"title"`
	PointsRequired int      `json:"pointsRequired"`
	Benefits       []string `json:"benefits,omitempty"`
}

// ActionResult reports what a recorded user action changed.
type ActionResult struct {
	Action          string        `json:"action"`
	PointsEarned    int           `json:"pointsEarned"`
	TotalPoints     int           `json:"totalPoints"`
	Level           UserLevel     `json:"level"`
	LeveledUp       bool          `json:"leveledUp"`
	NewAchievements []Achievement `json:"newAchievements"`
}

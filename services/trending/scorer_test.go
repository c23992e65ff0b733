package trending

import (
	"fmt"
	"testing"
	"time"

	"eventconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// hotEvent is a well-attended event created an hour ago and starting tomorrow.
func hotEvent(id string) models.Event {
	return models.Event{
		ID:        id,
		Title:     "Noche de Jazz",
		Category:  "music",
		Date:      testNow.Add(24 * time.Hour).Format(time.RFC3339),
		CreatedAt: testNow.Add(-1 * time.Hour),
		Attendees: 100,
		Likes:     50,
		Shares:    20,
		Comments:  10,
	}
}

func TestRankHighMomentumEvent(t *testing.T) {
	ev := hotEvent("e1")
	ev.IsPopular = true

	ranked := Rank([]models.Event{ev}, testNow, models.TrendingMetrics{})
	require.Len(t, ranked, 1)

	got := ranked[0]
	assert.Greater(t, got.TrendingScore, 60)
	assert.Equal(t, ReasonFillingFast, got.TrendingReason)
	assert.InDelta(t, 100.0, got.VelocityMetrics.AttendeeVelocity, 0.001)
	assert.InDelta(t, 0.8, got.VelocityMetrics.EngagementRate, 0.001)
}

func TestRankExcludesPastAndUnparseableDates(t *testing.T) {
	past := hotEvent("past")
	past.Date = testNow.Add(-2 * time.Hour).Format(time.RFC3339)

	garbled := hotEvent("garbled")
	garbled.Date = "next friday-ish"

	missing := hotEvent("missing")
	missing.Date = ""

	ranked := Rank([]models.Event{past, garbled, missing, hotEvent("ok")}, testNow, models.TrendingMetrics{})
	require.Len(t, ranked, 1)
	assert.Equal(t, "ok", ranked[0].ID)
}

func TestRankDropsScoresAtOrBelowThreshold(t *testing.T) {
	dud := models.Event{
		ID:        "dud",
		Title:     "Charla",
		Category:  "misc",
		Date:      testNow.Add(24 * time.Hour).Format(time.RFC3339),
		CreatedAt: testNow.Add(-48 * time.Hour),
		Attendees: 2,
	}

	ranked := Rank([]models.Event{dud}, testNow, models.TrendingMetrics{})
	assert.Empty(t, ranked)
}

func TestRankAttendeeVelocityMonotonicity(t *testing.T) {
	// Counters small enough that no term hits its cap, so the velocity
	// difference shows up in the score.
	build := func(id string, liveFor time.Duration) models.Event {
		return models.Event{
			ID:        id,
			Title:     "Quedada de senderismo",
			Category:  "music",
			Date:      testNow.Add(24 * time.Hour).Format(time.RFC3339),
			CreatedAt: testNow.Add(-liveFor),
			Attendees: 3,
			Likes:     2,
			Shares:    1,
		}
	}
	fast := build("fast", 1*time.Hour)
	slow := build("slow", 10*time.Hour)

	ranked := Rank([]models.Event{slow, fast}, testNow, models.TrendingMetrics{})
	require.Len(t, ranked, 2)
	assert.Equal(t, "fast", ranked[0].ID)
	assert.Greater(t, ranked[0].TrendingScore, ranked[1].TrendingScore)
}

func TestRankTopNBoundAndOrdering(t *testing.T) {
	var events []models.Event
	for i := 0; i < 30; i++ {
		ev := hotEvent(fmt.Sprintf("e%d", i))
		ev.Attendees = 50 + i
		events = append(events, ev)
	}

	ranked := Rank(events, testNow, models.TrendingMetrics{})
	require.Len(t, ranked, MaxTrendingEvents)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].TrendingScore, ranked[i].TrendingScore)
	}
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	first := hotEvent("first")
	second := hotEvent("second")

	ranked := Rank([]models.Event{first, second}, testNow, models.TrendingMetrics{})
	require.Len(t, ranked, 2)
	assert.Equal(t, ranked[0].TrendingScore, ranked[1].TrendingScore)
	assert.Equal(t, "first", ranked[0].ID)
	assert.Equal(t, "second", ranked[1].ID)
}

func TestRankProximityPenalty(t *testing.T) {
	soon := hotEvent("soon")
	farOut := hotEvent("farOut")
	farOut.Date = testNow.Add(45 * 24 * time.Hour).Format(time.RFC3339)
	midOut := hotEvent("midOut")
	midOut.Date = testNow.Add(20 * 24 * time.Hour).Format(time.RFC3339)

	ranked := Rank([]models.Event{farOut, midOut, soon}, testNow, models.TrendingMetrics{})
	require.Len(t, ranked, 3)
	assert.Equal(t, "soon", ranked[0].ID)
	assert.Equal(t, "midOut", ranked[1].ID)
	assert.Equal(t, "farOut", ranked[2].ID)
}

func TestRankLocationScope(t *testing.T) {
	madrid := hotEvent("madrid")
	madrid.Location = models.Location{Name: "Sala Sol", City: "Madrid"}
	elsewhere := hotEvent("elsewhere")
	elsewhere.Location = models.Location{Name: "Razzmatazz", City: "Barcelona"}

	ranked := Rank([]models.Event{madrid, elsewhere}, testNow, models.TrendingMetrics{Location: "madrid"})
	require.Len(t, ranked, 1)
	assert.Equal(t, "madrid", ranked[0].ID)
}

func TestReasonPriority(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Event)
		want   string
	}{
		{
			name:   "popular without velocity",
			mutate: func(ev *models.Event) { ev.IsPopular = true },
			want:   ReasonPopular,
		},
		{
			name:   "friends interested",
			mutate: func(ev *models.Event) { ev.FriendsAttending = 3 },
			want:   ReasonFriends,
		},
		{
			name:   "default reason",
			mutate: func(ev *models.Event) {},
			want:   ReasonDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A long-lived, lightly engaged event so no velocity reason wins
			// but the score still clears the cutoff.
			ev := hotEvent("e")
			ev.CreatedAt = testNow.Add(-100 * time.Hour)
			ev.Attendees = 60
			ev.Likes, ev.Shares, ev.Comments = 0, 0, 0
			tt.mutate(&ev)

			ranked := Rank([]models.Event{ev}, testNow, models.TrendingMetrics{})
			require.Len(t, ranked, 1)
			assert.Equal(t, tt.want, ranked[0].TrendingReason)
		})
	}
}

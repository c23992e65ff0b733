package trending

import (
	"math"
	"sort"
	"strings"
	"time"

	"eventconnect/models"
)

// Scoring constants. Each velocity term is capped before summing so one
// runaway counter cannot dominate the score.
const (
	AttendeeVelocityWeight = 10.0
	AttendeeVelocityCap    = 40.0
	EngagementRateWeight   = 25.0
	EngagementRateCap      = 25.0
	ShareVelocityWeight    = 20.0
	ShareVelocityCap       = 20.0
	SearchFrequencyCap     = 15.0

	PopularBonus         = 1.2
	FriendsBonus         = 1.1
	FarEventPenalty      = 0.8 // more than 30 days out
	MidEventPenalty      = 0.9 // more than 14 days out
	MinScore             = 10
	MaxTrendingEvents    = 20
	PopularCategoryBoost = 5.0
	KeywordBoost         = 3.0
	AttendeeSignalCap    = 7.0
)

// Categories that historically dominate platform searches.
var popularCategories = map[string]bool{
	"music":      true,
	"sports":     true,
	"food":       true,
	"technology": true,
	"nightlife":  true,
}

// Keywords that spike in search logs; a title or description hit counts as
// search interest for the event.
var trendingKeywords = []string{
	"festival", "concierto", "gratis", "verano", "networking", "madrid",
}

// Reasons shown to users, first match wins.
const (
	ReasonFillingFast = "Se está llenando rápidamente"
	ReasonEngagement  = "Alto nivel de interacción"
	ReasonShared      = "Se está compartiendo mucho"
	ReasonFriends     = "Tus amigos están interesados"
	ReasonPopular     = "Muy popular en tu área"
	ReasonDefault     = "Ganando popularidad"
)

// Rank scores the given events and returns the top trending ones, highest
// score first. Events in the past, with unparseable dates, or scoring at or
// below MinScore are dropped. Ties keep input order.
func Rank(events []models.Event, now time.Time, metrics models.TrendingMetrics) []models.TrendingEvent {
	scored := make([]models.TrendingEvent, 0, len(events))

	for _, ev := range events {
		start, ok := ev.StartTime()
		if !ok || !start.After(now) {
			continue
		}
		if metrics.Location != "" && !matchesLocation(ev, metrics.Location) {
			continue
		}

		vm := velocityMetrics(ev, now)
		score := baseScore(vm)
		score *= bonusMultiplier(ev)
		score *= proximityMultiplier(start, now)

		rounded := int(math.Round(score))
		if rounded <= MinScore {
			continue
		}

		scored = append(scored, models.TrendingEvent{
			Event:           ev,
			TrendingScore:   rounded,
			TrendingReason:  reason(ev, vm),
			VelocityMetrics: vm,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].TrendingScore > scored[j].TrendingScore
	})

	if len(scored) > MaxTrendingEvents {
		scored = scored[:MaxTrendingEvents]
	}
	return scored
}

// velocityMetrics derives the four momentum measurements for one event.
func velocityMetrics(ev models.Event, now time.Time) models.VelocityMetrics {
	hoursActive := now.Sub(ev.CreatedAt).Hours()
	if hoursActive < 1 {
		hoursActive = 1
	}

	engagementRate := 0.0
	if ev.Attendees > 0 {
		engagementRate = float64(ev.Likes+ev.Shares+ev.Comments) / float64(ev.Attendees)
	}

	return models.VelocityMetrics{
		AttendeeVelocity: float64(ev.Attendees) / hoursActive,
		EngagementRate:   engagementRate,
		ShareVelocity:    float64(ev.Shares) / hoursActive,
		SearchFrequency:  searchFrequency(ev),
	}
}

// searchFrequency estimates search interest without real search logs:
// category popularity, keyword hits, and crowd size stand in for it.
func searchFrequency(ev models.Event) float64 {
	freq := 0.0
	if popularCategories[strings.ToLower(ev.Category)] {
		freq += PopularCategoryBoost
	}
	text := strings.ToLower(ev.Title + " " + ev.Description)
	for _, kw := range trendingKeywords {
		if strings.Contains(text, kw) {
			freq += KeywordBoost
			break
		}
	}
	freq += math.Min(float64(ev.Attendees)/20, AttendeeSignalCap)
	return freq
}

func baseScore(vm models.VelocityMetrics) float64 {
	return math.Min(vm.AttendeeVelocity*AttendeeVelocityWeight, AttendeeVelocityCap) +
		math.Min(vm.EngagementRate*EngagementRateWeight, EngagementRateCap) +
		math.Min(vm.ShareVelocity*ShareVelocityWeight, ShareVelocityCap) +
		math.Min(vm.SearchFrequency, SearchFrequencyCap)
}

func bonusMultiplier(ev models.Event) float64 {
	mult := 1.0
	if ev.IsPopular {
		mult *= PopularBonus
	}
	if ev.FriendsAttending > 0 {
		mult *= FriendsBonus
	}
	return mult
}

// proximityMultiplier discounts events far in the future.
func proximityMultiplier(start, now time.Time) float64 {
	days := start.Sub(now).Hours() / 24
	switch {
	case days > 30:
		return FarEventPenalty
	case days > 14:
		return MidEventPenalty
	default:
		return 1.0
	}
}

// reason picks the single explanation shown next to the score.
func reason(ev models.Event, vm models.VelocityMetrics) string {
	switch {
	case vm.AttendeeVelocity > 5:
		return ReasonFillingFast
	case vm.EngagementRate > 2:
		return ReasonEngagement
	case vm.ShareVelocity > 2:
		return ReasonShared
	case ev.FriendsAttending > 2:
		return ReasonFriends
	case ev.IsPopular:
		return ReasonPopular
	default:
		return ReasonDefault
	}
}

func matchesLocation(ev models.Event, location string) bool {
	return strings.EqualFold(ev.Location.City, location) ||
		strings.EqualFold(ev.Location.Name, location)
}

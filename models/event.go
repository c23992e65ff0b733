package models

import "time"

// Location describes where an event takes place. City-level data is enough
// for discovery; coordinates are optional and only used for display.
type Location struct {
	Name string  `bson:"name" json:"name"`
	City string  `bson:"city" json:"city"`
	Lat  float64 `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng  float64 `bson:"lng,omitempty" json:"lng,omitempty"`
}

// Event is the discovery-facing event record. Engagement counters default to
// zero when the writer never set them; scorers must tolerate sparse events.
type Event struct {
	ID          string   `bson:"id" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Category    string   `bson:"category" json:"category"`
	Tags        []string `bson:"tags,omitempty" json:"tags,omitempty"`

	// Date is the RFC 3339 start time as supplied by the client. It is kept
	// as a string so a malformed value degrades to "excluded from ranking"
	// instead of failing decode for the whole record.
	Date      string    `bson:"date" json:"date"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`

	Location Location `bson:"location" json:"location"`
	// Distance is a display string such as "2.3 km", filled by the caller
	// when it knows the viewer's position.
	Distance string `bson:"-" json:"distance,omitempty"`

	Attendees int     `bson:"attendees" json:"attendees"`
	Price     float64 `bson:"price" json:"price"`

	Likes    int `bson:"likes" json:"likes"`
	Shares   int `bson:"shares" json:"shares"`
	Comments int `bson:"comments" json:"comments"`
	Views    int `bson:"views" json:"views"`

	IsPopular        bool `bson:"is_popular" json:"isPopular"`
	IsTrending       bool `bson:"is_trending" json:"isTrending"`
	FriendsAttending int  `bson:"friends_attending" json:"friendsAttending"`
}

// StartTime parses the event date. The second return reports whether the
// date was parseable at all.
func (e *Event) StartTime() (time.Time, bool) {
	if e.Date == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, e.Date); err == nil {
		return t, true
	}
	// Date-only values come from older mobile clients.
	if t, err := time.Parse("2006-01-02", e.Date); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// VelocityMetrics are the per-event momentum measurements behind a trending score.
type VelocityMetrics struct {
	AttendeeVelocity float64 `json:"attendeeVelocity"`
	EngagementRate   float64 `json:"engagementRate"`
	ShareVelocity    float64 `json:"shareVelocity"`
	SearchFrequency  float64 `json:"searchFrequency"`
}

// TrendingEvent is an Event annotated with its computed momentum. Derived on
// every call, never persisted.
type TrendingEvent struct {
	Event           `bson:",inline"`
	TrendingScore   int             `json:"trendingScore"`
	TrendingReason  string          `json:"trendingReason"`
	VelocityMetrics VelocityMetrics `json:"velocityMetrics"`
}

// TrendingMetrics selects the window and locality a trending query runs against.
type TrendingMetrics struct {
	TimeWindow string `json:"timeWindow" form:"timeWindow"`
	Location   string `json:"location" form:"location"`
}

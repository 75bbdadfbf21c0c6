package db_models

type TripStatus string

const (
	TripStatusPlanned   TripStatus = "planned"
	TripStatusUpcoming  TripStatus = "upcoming"
	TripStatusCompleted TripStatus = "completed"
)

// statusRank orders the trip lifecycle. A status may only advance.
var statusRank = map[TripStatus]int{
	TripStatusPlanned:   0,
	TripStatusUpcoming:  1,
	TripStatusCompleted: 2,
}

func (s TripStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next keeps the
// lifecycle moving forward. Staying on the same status is allowed.
func (s TripStatus) CanTransitionTo(next TripStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return next.Valid()
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to >= from
}

type Trip struct {
	BaseModel
	UserID      string     `json:"user_id"`
	Destination string     `json:"destination"`
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date"`
	Duration    int        `json:"duration"`
	Cost        int        `json:"cost"`
	Travelers   int        `json:"travelers"`
	Budget      *int       `json:"budget,omitempty"`
	Interests   []string   `json:"interests"`
	Status      TripStatus `json:"status"`
	Thumbnail   string     `json:"thumbnail,omitempty"`
	Itinerary   []DayPlan  `json:"itinerary"`
}

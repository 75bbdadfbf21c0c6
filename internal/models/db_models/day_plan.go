package db_models

type ActivityType string

const (
	ActivityAttraction ActivityType = "attraction"
	ActivityRestaurant ActivityType = "restaurant"
	ActivityGeneric    ActivityType = "activity"
	ActivityTransport  ActivityType = "transport"
)

type Activity struct {
	Time        string       `json:"time"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Duration    string       `json:"duration"`
	Cost        string       `json:"cost"`
	Type        ActivityType `json:"type"`
	Rating      float64      `json:"rating,omitempty"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
	TotalCost  string     `json:"total_cost"`
}

package request_models

type GenerateTripRequest struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Budget      *int     `json:"budget,omitempty"`
	Travelers   int      `json:"travelers"`
	Interests   []string `json:"interests"`
}

// UpdateTripRequest carries a partial-field merge; nil fields are
// left untouched on the stored record.
type UpdateTripRequest struct {
	Destination *string   `json:"destination,omitempty"`
	StartDate   *string   `json:"start_date,omitempty"`
	EndDate     *string   `json:"end_date,omitempty"`
	Budget      *int      `json:"budget,omitempty"`
	Travelers   *int      `json:"travelers,omitempty"`
	Interests   *[]string `json:"interests,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Thumbnail   *string   `json:"thumbnail,omitempty"`
}

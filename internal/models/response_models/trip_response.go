package response_models

import "tripgenius/internal/models/db_models"

type GenerateTripResponse struct {
	Trip      *db_models.Trip     `json:"trip"`
	Itinerary []db_models.DayPlan `json:"itinerary"`
}

type TripListResponse struct {
	Trips []*db_models.Trip `json:"trips"`
}

type HealthResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Users     int    `json:"users"`
	Trips     int    `json:"trips"`
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripgenius/internal/models/request_models"
	"tripgenius/internal/models/response_models"
	"tripgenius/internal/services"
	"tripgenius/pkg/middleware"
	"tripgenius/pkg/utils"
)

type TripController struct {
	tripService      services.TripServiceInterface
	itineraryService services.ItineraryServiceInterface
}

func NewTripController(
	tripService services.TripServiceInterface,
	itineraryService services.ItineraryServiceInterface,
) *TripController {
	return &TripController{
		tripService:      tripService,
		itineraryService: itineraryService,
	}
}

// GenerateTrip godoc
// @Summary Generate a trip
// @Description Build an itinerary for the date span and persist the trip for the caller
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.GenerateTripRequest true "Trip parameters"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/generate [post]
func (t *TripController) GenerateTrip(c *gin.Context) {
	var req request_models.GenerateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Destination == "" || req.StartDate == "" || req.EndDate == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination, start date, and end date are required")
		return
	}

	itinerary, err := t.itineraryService.Generate(c.Request.Context(), req.Destination, req.StartDate, req.EndDate, req.Interests)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	trip, err := t.tripService.Create(c.Request.Context(), c.GetString(middleware.ContextUserIDKey), req, itinerary)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.GenerateTripResponse{
		Trip:      trip,
		Itinerary: trip.Itinerary,
	}, "Trip generated successfully")
}

// GetTrips godoc
// @Summary List trips
// @Description Fetch every trip owned by the caller
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) GetTrips(c *gin.Context) {
	trips, err := t.tripService.ListForOwner(c.Request.Context(), c.GetString(middleware.ContextUserIDKey))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.TripListResponse{Trips: trips}, "Trips fetched successfully")
}

// GetTrip godoc
// @Summary Get a trip
// @Description Fetch a single trip owned by the caller
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	trip, err := t.tripService.Get(c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserIDKey))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"trip": trip}, "Trip fetched successfully")
}

// UpdateTrip godoc
// @Summary Update a trip
// @Description Merge the given fields into a trip owned by the caller
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.UpdateTripRequest true "Fields to merge"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id} [put]
func (t *TripController) UpdateTrip(c *gin.Context) {
	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.Update(c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserIDKey), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"trip": trip}, "Trip updated successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Description Remove a trip owned by the caller and decrement their trip count
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	err := t.tripService.Delete(c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserIDKey))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

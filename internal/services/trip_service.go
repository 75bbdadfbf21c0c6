package services

import (
	"context"
	"fmt"

	"tripgenius/internal/models/db_models"
	"tripgenius/internal/models/request_models"
	"tripgenius/internal/repositories"
	"tripgenius/pkg/utils"
)

type TripServiceInterface interface {
	Create(ctx context.Context, ownerID string, request request_models.GenerateTripRequest, itinerary []db_models.DayPlan) (*db_models.Trip, error)
	Get(ctx context.Context, tripID string, requesterID string) (*db_models.Trip, error)
	ListForOwner(ctx context.Context, ownerID string) ([]*db_models.Trip, error)
	Update(ctx context.Context, tripID string, requesterID string, request request_models.UpdateTripRequest) (*db_models.Trip, error)
	Delete(ctx context.Context, tripID string, requesterID string) error
}

type TripService struct {
	tripRepo repositories.TripRepository
	userRepo repositories.UserRepository
}

func NewTripService(tripRepo repositories.TripRepository, userRepo repositories.UserRepository) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
		userRepo: userRepo,
	}
}

// ownedBy is the single authorization predicate for trip access.
func ownedBy(trip *db_models.Trip, requesterID string) bool {
	return trip.UserID == requesterID
}

// Create persists a trip built from a generated itinerary. Duration
// and cost are computed here, and the owner's denormalized trip count
// goes up by one.
func (t *TripService) Create(ctx context.Context, ownerID string, request request_models.GenerateTripRequest, itinerary []db_models.DayPlan) (*db_models.Trip, error) {
	start, end, err := ParseTripDates(request.StartDate, request.EndDate)
	if err != nil {
		return nil, err
	}

	travelers := request.Travelers
	if travelers < 1 {
		travelers = 1
	}
	interests := request.Interests
	if interests == nil {
		interests = []string{}
	}

	trip, err := t.tripRepo.Insert(ctx, &db_models.Trip{
		UserID:      ownerID,
		Destination: request.Destination,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
		Duration:    InclusiveDays(start, end),
		Cost:        ItineraryCost(itinerary),
		Travelers:   travelers,
		Budget:      request.Budget,
		Interests:   interests,
		Status:      db_models.TripStatusPlanned,
		Thumbnail:   utils.ThumbnailURL(request.Destination),
		Itinerary:   itinerary,
	})
	if err != nil {
		return nil, utils.ErrInternal
	}

	if _, err := t.userRepo.AdjustTripCount(ctx, ownerID, 1); err != nil {
		return nil, utils.ErrInternal
	}

	return trip, nil
}

func (t *TripService) Get(ctx context.Context, tripID string, requesterID string) (*db_models.Trip, error) {
	trip, err := t.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrInternal
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if !ownedBy(trip, requesterID) {
		return nil, utils.ErrForbidden
	}
	return trip, nil
}

func (t *TripService) ListForOwner(ctx context.Context, ownerID string) ([]*db_models.Trip, error) {
	trips, err := t.tripRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrInternal
	}
	return trips, nil
}

// Update merges the non-nil request fields into the trip. Date changes
// are re-validated and the duration recomputed; status may only move
// forward through planned, upcoming, completed.
func (t *TripService) Update(ctx context.Context, tripID string, requesterID string, request request_models.UpdateTripRequest) (*db_models.Trip, error) {
	trip, err := t.Get(ctx, tripID, requesterID)
	if err != nil {
		return nil, err
	}

	startDate := trip.StartDate
	endDate := trip.EndDate
	if request.StartDate != nil {
		startDate = *request.StartDate
	}
	if request.EndDate != nil {
		endDate = *request.EndDate
	}
	start, end, err := ParseTripDates(startDate, endDate)
	if err != nil {
		return nil, err
	}

	var status *db_models.TripStatus
	if request.Status != nil {
		next := db_models.TripStatus(*request.Status)
		if !next.Valid() {
			return nil, fmt.Errorf("%w: unknown trip status %q", utils.ErrValidation, *request.Status)
		}
		if !trip.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: trip status cannot move back from %q to %q", utils.ErrValidation, trip.Status, next)
		}
		status = &next
	}

	updated, err := t.tripRepo.Update(ctx, tripID, func(trip *db_models.Trip) {
		if request.Destination != nil {
			trip.Destination = *request.Destination
			trip.Thumbnail = utils.ThumbnailURL(*request.Destination)
		}
		trip.StartDate = startDate
		trip.EndDate = endDate
		trip.Duration = InclusiveDays(start, end)
		if request.Budget != nil {
			trip.Budget = request.Budget
		}
		if request.Travelers != nil {
			trip.Travelers = *request.Travelers
		}
		if request.Interests != nil {
			trip.Interests = *request.Interests
		}
		if status != nil {
			trip.Status = *status
		}
		if request.Thumbnail != nil {
			trip.Thumbnail = *request.Thumbnail
		}
	})
	if err != nil {
		return nil, utils.ErrInternal
	}
	if updated == nil {
		return nil, utils.ErrTripNotFound
	}
	return updated, nil
}

// Delete removes the trip and decrements the owner's trip count,
// floored at zero.
func (t *TripService) Delete(ctx context.Context, tripID string, requesterID string) error {
	if _, err := t.Get(ctx, tripID, requesterID); err != nil {
		return err
	}

	deleted, err := t.tripRepo.Delete(ctx, tripID)
	if err != nil {
		return utils.ErrInternal
	}
	if !deleted {
		return utils.ErrTripNotFound
	}

	if _, err := t.userRepo.AdjustTripCount(ctx, requesterID, -1); err != nil {
		return utils.ErrInternal
	}
	return nil
}

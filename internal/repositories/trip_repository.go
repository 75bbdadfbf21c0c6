package repositories

import (
	"context"
	"sync"

	"tripgenius/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) (*db_models.Trip, error)
	FindByID(ctx context.Context, id string) (*db_models.Trip, error)
	FindByOwner(ctx context.Context, userID string) ([]*db_models.Trip, error)
	Update(ctx context.Context, id string, apply func(*db_models.Trip)) (*db_models.Trip, error)
	Delete(ctx context.Context, id string) (bool, error)
	All(ctx context.Context) ([]*db_models.Trip, error)
}

type tripRepository struct {
	mu    sync.RWMutex
	trips map[string]db_models.Trip
}

func NewTripRepository() TripRepository {
	return &tripRepository{
		trips: make(map[string]db_models.Trip),
	}
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) (*db_models.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip.Stamp()
	r.trips[trip.ID] = *trip

	out := *trip
	return &out, nil
}

func (r *tripRepository) FindByID(ctx context.Context, id string) (*db_models.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trip, ok := r.trips[id]
	if !ok {
		return nil, nil
	}
	return &trip, nil
}

// FindByOwner returns every trip owned by userID. Map iteration order
// applies; callers must not rely on insertion order.
func (r *tripRepository) FindByOwner(ctx context.Context, userID string) ([]*db_models.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*db_models.Trip, 0)
	for _, trip := range r.trips {
		if trip.UserID == userID {
			t := trip
			out = append(out, &t)
		}
	}
	return out, nil
}

func (r *tripRepository) Update(ctx context.Context, id string, apply func(*db_models.Trip)) (*db_models.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip, ok := r.trips[id]
	if !ok {
		return nil, nil
	}

	apply(&trip)
	trip.Touch()
	r.trips[id] = trip

	out := trip
	return &out, nil
}

func (r *tripRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trips[id]; !ok {
		return false, nil
	}
	delete(r.trips, id)
	return true, nil
}

func (r *tripRepository) All(ctx context.Context) ([]*db_models.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*db_models.Trip, 0, len(r.trips))
	for _, trip := range r.trips {
		t := trip
		out = append(out, &t)
	}
	return out, nil
}

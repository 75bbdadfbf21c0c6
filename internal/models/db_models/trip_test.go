package db_models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripgenius/internal/models/db_models"
)

func TestTripStatus_Valid(t *testing.T) {
	assert.True(t, db_models.TripStatusPlanned.Valid())
	assert.True(t, db_models.TripStatusUpcoming.Valid())
	assert.True(t, db_models.TripStatusCompleted.Valid())
	assert.False(t, db_models.TripStatus("cancelled").Valid())
}

func TestTripStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, db_models.TripStatusPlanned.CanTransitionTo(db_models.TripStatusUpcoming))
	assert.True(t, db_models.TripStatusPlanned.CanTransitionTo(db_models.TripStatusCompleted))
	assert.True(t, db_models.TripStatusUpcoming.CanTransitionTo(db_models.TripStatusUpcoming))
	assert.False(t, db_models.TripStatusCompleted.CanTransitionTo(db_models.TripStatusPlanned))
	assert.False(t, db_models.TripStatusUpcoming.CanTransitionTo(db_models.TripStatus("cancelled")))
}

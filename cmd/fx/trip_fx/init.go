package trip_fx

import (
	"go.uber.org/fx"

	"tripgenius/internal/services"
)

var Module = fx.Provide(
	services.NewItineraryService,
	services.NewTripService,
)

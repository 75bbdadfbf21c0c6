package store_fx

import (
	"go.uber.org/fx"

	"tripgenius/internal/repositories"
)

var Module = fx.Provide(
	repositories.NewUserRepository,
	repositories.NewTripRepository,
	repositories.NewSessionRepository,
)

package auth_fx

import (
	"go.uber.org/fx"

	"tripgenius/internal/services"
	"tripgenius/pkg/utils"
)

var Module = fx.Provide(
	provideSecretHasher,
	services.NewAuthService,
)

func provideSecretHasher() services.SecretHasher {
	return utils.NewBcryptHasher()
}

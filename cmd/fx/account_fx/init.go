package account_fx

import (
	"errors"

	"go.uber.org/fx"

	"lingua/internal/config"
	"lingua/internal/repositories"
	"lingua/internal/services"
	"lingua/pkg/utils"
)

var Module = fx.Provide(
	provideTokenManager,
	repositories.NewAccountRepository,
	services.NewAccountService)

func provideTokenManager(cfg *config.Config) (*utils.TokenManager, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	return utils.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL), nil
}

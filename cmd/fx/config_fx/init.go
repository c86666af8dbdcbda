package config_fx

import (
	"go.uber.org/fx"

	"lingua/internal/config"
)

var Module = fx.Provide(config.Load)

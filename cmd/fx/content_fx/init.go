package content_fx

import (
	"go.uber.org/fx"

	"lingua/internal/services"
)

var Module = fx.Provide(
	services.NewContentService)

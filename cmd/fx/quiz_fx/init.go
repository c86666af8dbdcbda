package quiz_fx

import (
	"go.uber.org/fx"

	"lingua/internal/repositories"
	"lingua/internal/services"
)

var Module = fx.Provide(
	repositories.NewQuizRepository,
	services.NewQuizService)

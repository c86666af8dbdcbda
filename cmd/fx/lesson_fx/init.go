package lesson_fx

import (
	"go.uber.org/fx"

	"lingua/internal/repositories"
	"lingua/internal/services"
)

var Module = fx.Provide(
	repositories.NewLessonRepository,
	repositories.NewProgressRepository,
	repositories.NewProfileRepository,
	services.NewLessonService,
	services.NewProfileService)

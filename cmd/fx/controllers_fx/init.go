package controllers_fx

import (
	"go.uber.org/fx"

	"lingua/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewContentController),
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewFlashcardController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewLessonController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewAccountController))

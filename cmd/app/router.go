package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"lingua/internal/api/controllers"
	"lingua/internal/config"
	"lingua/pkg/logger"
	"lingua/pkg/middleware"
	"lingua/pkg/utils"
)

type RouterParams struct {
	fx.In

	Config *config.Config
	Log    *logger.Logger
	Tokens *utils.TokenManager

	Content   *controllers.ContentController
	Quiz      *controllers.QuizController
	Flashcard *controllers.FlashcardController
	Chat      *controllers.ChatController
	Lesson    *controllers.LessonController
	Profile   *controllers.ProfileController
	Account   *controllers.AccountController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	if p.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Log))
	r.Use(middleware.CORS(p.Config.ClientURL))

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := middleware.JWTAuthMiddleware(p.Tokens)

	api := r.Group("/api")
	api.POST("/register", p.Account.Register)
	api.POST("/login", p.Account.Login)

	api.POST("/ai/generate", p.Content.GenerateContentHandler)

	quizzes := api.Group("/quizzes")
	quizzes.POST("/generate", p.Quiz.GenerateQuizHandler)
	quizzes.POST("/submit", p.Quiz.SubmitQuizHandler)

	api.POST("/flashcards", p.Flashcard.GetFlashcardsHandler)

	api.POST("/chat", p.Chat.ChatHandler)
	api.POST("/voiceAssistant", p.Chat.VoiceHandler)

	lessons := api.Group("/lessons")
	lessons.GET("", p.Lesson.ListLessonsHandler)
	lessons.POST("/complete", auth, p.Lesson.CompleteLessonHandler)
	lessons.GET("/next", auth, p.Lesson.NextLessonHandler)

	profile := api.Group("/profile", auth)
	profile.GET("", p.Profile.GetProfileHandler)
	profile.POST("", p.Profile.UpdateProfileHandler)
}

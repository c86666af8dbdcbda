package request_models

// QuizSubmitRequest mirrors what the quiz page posts. Pointer fields make gin's
// required check reject absent values rather than zero values.
type QuizSubmitRequest struct {
	UserID  string              `json:"userId" binding:"required"`
	QuizID  string              `json:"quizId" binding:"required"`
	Answers []QuizAnswerRequest `json:"answers" binding:"required,dive"`
	Score   *float64            `json:"score" binding:"required"`
}

type QuizAnswerRequest struct {
	QuestionID string  `json:"questionId" binding:"required"`
	Answer     *string `json:"answer" binding:"required"`
	IsCorrect  *bool   `json:"isCorrect" binding:"required"`
}

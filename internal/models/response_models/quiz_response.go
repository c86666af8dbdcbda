package response_models

type QuizResponse struct {
	QuizID    string                 `json:"quizId"`
	Questions []QuizQuestionResponse `json:"questions"`
}

// QuizQuestionResponse keeps the "_id" key the quiz page reads.
type QuizQuestionResponse struct {
	ID            string   `json:"_id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	QuizID        string   `json:"quizId"`
}

type QuizSubmitResponse struct {
	Message string `json:"message"`
	Score   int    `json:"score"`
}

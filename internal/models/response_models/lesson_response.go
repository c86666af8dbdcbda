package response_models

type LessonResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Level       string `json:"level"`
	VideoURL    string `json:"videoUrl"`
	Order       int    `json:"order"`
	Duration    int    `json:"duration"`
}

type CompleteLessonResponse struct {
	Message      string  `json:"message"`
	NextLessonID *string `json:"nextLessonId"`
}

type ProfileResponse struct {
	TargetLanguage string `json:"targetLanguage"`
	Level          string `json:"level"`
	Goals          string `json:"goals"`
}

package request_models

type LessonQuery struct {
	Language string `form:"language" binding:"required"`
	Level    string `form:"level" binding:"required"`
}

type CompleteLessonRequest struct {
	LessonID string `json:"lessonId" binding:"required"`
}

type ProfileRequest struct {
	TargetLanguage string `json:"targetLanguage" binding:"required"`
	Level          string `json:"level" binding:"omitempty,oneof=Beginner Intermediate Advanced"`
	Goals          string `json:"goals"`
}

package request_models

// GenerationRequest is the body of course and quiz generation.
type GenerationRequest struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

type FlashcardRequest struct {
	Language string `json:"language"`
}

type VoiceRequest struct {
	Message string `json:"message"`
}

// ChatRequest is the JSON form of a chat call. Multipart calls carry the same fields as form values.
type ChatRequest struct {
	Message  string        `json:"message" form:"message"`
	Messages []ChatMessage `json:"messages"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

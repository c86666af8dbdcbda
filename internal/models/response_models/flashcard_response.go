package response_models

type Flashcard struct {
	EnglishWord    string `json:"englishWord"`
	TranslatedWord string `json:"translatedWord"`
}

package response_models

// GeneratedCourse is the document the course prompt asks the model for.
// Handlers return the validated JSON as-is; these types describe its shape.
type GeneratedCourse struct {
	Days       []CourseDay       `json:"days"`
	Quizzes    []CourseQuiz      `json:"quizzes"`
	Flashcards []CourseFlashcard `json:"flashcards"`
	Dialogue   CourseDialogue    `json:"dialogue"`
}

type CourseDay struct {
	Day     string         `json:"day"`
	Lessons []CourseLesson `json:"lessons"`
}

type CourseLesson struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Content     []CourseSection `json:"content"`
}

type CourseSection struct {
	Heading  string   `json:"heading"`
	Text     string   `json:"text"`
	Examples []string `json:"examples"`
	Practice string   `json:"practice"`
	AudioURL string   `json:"audioUrl"`
	ImageURL string   `json:"imageUrl"`
}

type CourseQuiz struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

type CourseFlashcard struct {
	Term         string `json:"term"`
	Definition   string `json:"definition"`
	ExampleUsage string `json:"exampleUsage"`
}

type CourseDialogue struct {
	Title string         `json:"title"`
	Lines []DialogueLine `json:"lines"`
}

type DialogueLine struct {
	Speaker     string `json:"speaker"`
	Text        string `json:"text"`
	Translation string `json:"translation"`
}

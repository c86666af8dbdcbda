package services

import (
	"fmt"
	"strings"
)

// Prompt is a system persona plus the user instruction sent with it.
type Prompt struct {
	System      string
	Instruction string
}

type PromptServiceInterface interface {
	CoursePrompt(language, level string) Prompt
	QuizPrompt(language, level string) Prompt
	ChatSystemPrompt() string
	VoiceSystemPrompt() string
}

type PromptService struct{}

func NewPromptService() PromptServiceInterface {
	return &PromptService{}
}

const (
	courseSystemPrompt = "You are a kind and patient language tutor who creates beginner-friendly language learning material in structured JSON."
	quizSystemPrompt   = "You are a quiz generator bot for language learners."
)

// CoursePrompt embeds language and level verbatim.
func (p *PromptService) CoursePrompt(language, level string) Prompt {
	instruction := fmt.Sprintf(`
You are a professional language tutor creating a complete 5-day course for learning "%[1]s" at the "%[2]s" level.

Assume the learner knows ZERO about the language. Create a full beginner-friendly experience.

For each day, include:
- 2-3 lessons
- each lesson must contain:
  - title
  - description
  - content (sections with heading, text explanation, examples, practice tip, audioUrl: "", imageUrl: "")

Also provide:
- 5 quizzes with options, correct answer, explanation
- 10 flashcards with term (in %[1]s), definition (in English), and usage in a sentence
- 1 sample dialogue with 4-6 lines in %[1]s and their English translations

IMPORTANT: Return ONLY raw, valid JSON with this format (NO markdown or backticks):
{
  "days": [
    {
      "day": "Day 1",
      "lessons": [
        {
          "title": "Lesson Title",
          "description": "What the lesson covers",
          "content": [
            {
              "heading": "Topic Heading",
              "text": "Beginner-friendly explanation",
              "examples": ["Example sentence 1", "Example 2"],
              "practice": "Simple exercise suggestion",
              "audioUrl": "",
              "imageUrl": ""
            }
          ]
        }
      ]
    }
  ],
  "quizzes": [
    {
      "question": "Beginner-level question",
      "options": ["A", "B", "C", "D"],
      "answer": "Correct option",
      "explanation": "Short reason why it's correct"
    }
  ],
  "flashcards": [
    {
      "term": "Word in %[1]s",
      "definition": "Meaning in English",
      "exampleUsage": "How it's used in a sentence"
    }
  ],
  "dialogue": {
    "title": "Basic Conversation Example",
    "lines": [
      {
        "speaker": "A",
        "text": "Sentence in %[1]s",
        "translation": "English translation"
      }
    ]
  }
}
`, language, level)

	return Prompt{System: courseSystemPrompt, Instruction: strings.TrimSpace(instruction)}
}

func (p *PromptService) QuizPrompt(language, level string) Prompt {
	instruction := fmt.Sprintf(`Generate 5 multiple-choice quiz questions for %s learners at the %s level.
Each question should focus on language skills such as:
- Vocabulary
- Grammar
- Sentence construction
- (Optional) Common phrases

Ensure each question:
- Uses clear language
- Has 4 options
- Has a 'correctAnswer' that exactly matches one of the options

Format: JSON array of objects with:
1. "question"
2. "options": [4 options]
3. "correctAnswer"
`, language, level)

	return Prompt{System: quizSystemPrompt, Instruction: instruction}
}

func (p *PromptService) ChatSystemPrompt() string {
	return `You are an intelligent, helpful AI tutor.
Maintain full context of previous messages.
Do not ask the user to repeat; instead, reason based on history.
Improve clarity, grammar, and explanation.
Format replies in clean HTML using <p>, <ul>, <li>, <h3> where helpful.`
}

func (p *PromptService) VoiceSystemPrompt() string {
	return `You are a friendly and concise AI voice assistant.
Keep answers clear and natural.
Keep it short, spoken like a human.`
}

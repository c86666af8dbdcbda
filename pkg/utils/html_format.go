package utils

import (
	"regexp"
	"strings"
)

const NoAIResponse = "No response from AI."

var numberedLine = regexp.MustCompile(`^\d+\.`)

// FormatChatHTML turns a model reply into a flat HTML fragment, one element per non-blank line.
// "###" lines become <h3>, numbered and dash/star lines become <li>, anything else <p>.
// Consecutive <li> elements share one <ul>. No escaping and no inline markup.
func FormatChatHTML(text string) string {
	if text == "" {
		return NoAIResponse
	}

	var b strings.Builder
	inList := false
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		item, isItem := listItem(trimmed)
		if isItem && !inList {
			b.WriteString("<ul>")
		}
		if !isItem && inList {
			b.WriteString("</ul>")
		}
		inList = isItem

		switch {
		case isItem:
			b.WriteString("<li>" + item + "</li>")
		case strings.HasPrefix(trimmed, "###"):
			b.WriteString("<h3>" + strings.TrimSpace(strings.TrimLeft(trimmed, "#")) + "</h3>")
		default:
			b.WriteString("<p>" + trimmed + "</p>")
		}
	}
	if inList {
		b.WriteString("</ul>")
	}
	return b.String()
}

func listItem(line string) (string, bool) {
	if strings.HasPrefix(line, "###") {
		return "", false
	}
	if numberedLine.MatchString(line) {
		return line, true
	}
	if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") {
		return strings.TrimSpace(line[1:]), true
	}
	return "", false
}

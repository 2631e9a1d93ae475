package letters

import (
	"fmt"
	"strings"
)

// Prompt composes the completion instruction for a request. Pure and total:
// identical requests always produce identical prompts, and absent optional
// fields emit no line.
func Prompt(req LetterRequest) string {
	return strings.Join(PromptLines(req), "\n")
}

// PromptLines renders the ordered instruction lines. Required lines come
// first in fixed order, then company, position, greeting and closing, each
// only when its field is present. Whitespace-only optional values are
// treated as absent.
func PromptLines(req LetterRequest) []string {
	lines := []string{
		fmt.Sprintf("Write a %s cover letter in a %s tone.", strings.ToLower(req.Length), strings.ToLower(req.Tone)),
		fmt.Sprintf("Complexity: %d/10.", req.Complexity),
		"Job description: " + req.JobText,
		"My resume:\n" + req.ResumeText,
		fmt.Sprintf("Name: %s, Email: %s.", req.FullName, req.Email),
	}
	if v, ok := optional(req.CompanyName); ok {
		lines = append(lines, fmt.Sprintf("Address to %s.", v))
	}
	if v, ok := optional(req.PositionTitle); ok {
		lines = append(lines, fmt.Sprintf("Position: %s.", v))
	}
	if v, ok := optional(req.RecipientName); ok {
		lines = append(lines, fmt.Sprintf("Greeting: 'Dear %s,'", v))
	}
	if v, ok := optional(req.ClosingPhrase); ok {
		lines = append(lines, fmt.Sprintf("Closing: '%s, %s.'", v, req.FullName))
	}
	return lines
}

func optional(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	return v, v != ""
}

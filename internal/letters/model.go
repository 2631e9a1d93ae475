package letters

// Tone and length labels offered by the form. Prompt rendering lower-cases
// them; validation matches them verbatim.
var Tones = []string{"Professional", "Friendly", "Enthusiastic", "Confident", "Concise"}

var Lengths = []string{"Short (1–2 paragraphs)", "Standard (3 paragraphs)", "Detailed (4–5 paragraphs)"}

const (
	MinComplexity = 1
	MaxComplexity = 10
)

// LetterRequest is the structured input to the prompt composer. Required
// fields must be non-blank; optional fields render a prompt line only when
// present.
type LetterRequest struct {
	JobText    string
	ResumeText string
	FullName   string
	Email      string
	Tone       string
	Complexity int
	Length     string

	CompanyName   string
	PositionTitle string
	RecipientName string
	ClosingPhrase string
}

// ValidTone reports whether the tone is one of the fixed labels.
func ValidTone(tone string) bool {
	return contains(Tones, tone)
}

// ValidLength reports whether the length is one of the fixed presets.
func ValidLength(length string) bool {
	return contains(Lengths, length)
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

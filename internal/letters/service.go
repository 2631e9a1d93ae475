package letters

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"coverletter-backend/internal/extract"
	"coverletter-backend/internal/llm"
	"coverletter-backend/internal/shared/metrics"
)

// Service runs the generation pipeline: extract, compose, complete.
// Stateless: every invocation is independent, nothing is persisted.
type Service struct {
	LLM   llm.Client
	Model string
}

// GenerateInput carries the raw field values collected at the boundary.
// Exactly one resume source is used: uploaded bytes (ResumeFileName +
// ResumeData) when present, otherwise pre-supplied ResumeText (CLI path).
type GenerateInput struct {
	JobText        string
	ResumeFileName string
	ResumeData     []byte
	ResumeText     string
	FullName       string
	Email          string
	Tone           string
	Complexity     int
	Length         string

	CompanyName   string
	PositionTitle string
	RecipientName string
	ClosingPhrase string
}

// GeneratedLetter is the pipeline result.
type GeneratedLetter struct {
	ID        string
	Letter    string
	Model     string
	CreatedAt time.Time
}

// Generate validates the request, extracts resume text when a file was
// uploaded, composes the prompt and calls the completion client. Validation
// failures short-circuit before the client is invoked.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (GeneratedLetter, error) {
	start := time.Now()

	resumeText := in.ResumeText
	if len(in.ResumeData) > 0 {
		extracted, err := extract.Text(in.ResumeFileName, in.ResumeData)
		if err != nil {
			metrics.IncLetterFailed()
			return GeneratedLetter{}, err
		}
		resumeText = extracted
	}

	req := LetterRequest{
		JobText:       in.JobText,
		ResumeText:    resumeText,
		FullName:      in.FullName,
		Email:         in.Email,
		Tone:          in.Tone,
		Complexity:    in.Complexity,
		Length:        in.Length,
		CompanyName:   in.CompanyName,
		PositionTitle: in.PositionTitle,
		RecipientName: in.RecipientName,
		ClosingPhrase: in.ClosingPhrase,
	}
	if err := Validate(req); err != nil {
		metrics.IncLetterFailed()
		return GeneratedLetter{}, err
	}

	letter, err := s.LLM.Complete(ctx, Prompt(req))
	if err != nil {
		metrics.IncLetterFailed()
		return GeneratedLetter{}, err
	}

	metrics.IncLetterGenerated()
	metrics.ObserveLetterDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	return GeneratedLetter{
		ID:        uuid.NewString(),
		Letter:    strings.TrimSpace(letter),
		Model:     s.Model,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Validate checks required fields and enum membership. The returned error
// wraps ErrValidation with a user-facing message.
func Validate(req LetterRequest) error {
	switch {
	case strings.TrimSpace(req.JobText) == "":
		return validationError("job description is required")
	case strings.TrimSpace(req.ResumeText) == "":
		return validationError("resume text is required")
	case strings.TrimSpace(req.FullName) == "":
		return validationError("full name is required")
	case strings.TrimSpace(req.Email) == "":
		return validationError("email is required")
	}
	if !ValidTone(req.Tone) {
		return validationError(fmt.Sprintf("tone must be one of %s", strings.Join(Tones, ", ")))
	}
	if !ValidLength(req.Length) {
		return validationError(fmt.Sprintf("length must be one of %s", strings.Join(Lengths, ", ")))
	}
	if req.Complexity < MinComplexity || req.Complexity > MaxComplexity {
		return validationError(fmt.Sprintf("complexity must be between %d and %d", MinComplexity, MaxComplexity))
	}
	return nil
}

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

package letters

import "time"

// GenerateResponse is the outward-facing representation of a generated letter.
type GenerateResponse struct {
	LetterID  string    `json:"letterId"`
	Letter    string    `json:"letter"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExportRequest carries a letter to render as a DOCX artifact.
type ExportRequest struct {
	Letter string `json:"letter"`
}

func toResponse(out GeneratedLetter) GenerateResponse {
	return GenerateResponse{
		LetterID:  out.ID,
		Letter:    out.Letter,
		Model:     out.Model,
		CreatedAt: out.CreatedAt,
	}
}

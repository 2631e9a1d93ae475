package letters

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"coverletter-backend/internal/extract"
	"coverletter-backend/internal/llm"
	"coverletter-backend/internal/render"
)

type fakeClient struct {
	calls   int
	prompts []string
	letter  string
	err     error
}

func (f *fakeClient) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.letter, nil
}

func validInput() GenerateInput {
	return GenerateInput{
		JobText:    "Senior Engineer role",
		ResumeText: "5 yrs backend",
		FullName:   "Jane Doe",
		Email:      "jane@x.com",
		Tone:       "Professional",
		Complexity: 5,
		Length:     "Short (1–2 paragraphs)",
	}
}

func TestGenerateTrimsLetter(t *testing.T) {
	fake := &fakeClient{letter: "  Dear Hiring Manager,\n\nBody.\n\nSincerely,\nJane  \n"}
	svc := &Service{LLM: fake, Model: "gpt-3.5-turbo"}

	out, err := svc.Generate(context.Background(), validInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out.Letter != "Dear Hiring Manager,\n\nBody.\n\nSincerely,\nJane" {
		t.Fatalf("letter not trimmed: %q", out.Letter)
	}
	if out.ID == "" {
		t.Fatal("expected a letter id")
	}
	if out.Model != "gpt-3.5-turbo" {
		t.Fatalf("unexpected model: %q", out.Model)
	}
	if fake.calls != 1 {
		t.Fatalf("expected one completion call, got %d", fake.calls)
	}
}

func TestGenerateValidationShortCircuits(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*GenerateInput)
	}{
		{"missing job text", func(in *GenerateInput) { in.JobText = "" }},
		{"missing resume", func(in *GenerateInput) { in.ResumeText = "" }},
		{"missing name", func(in *GenerateInput) { in.FullName = "  " }},
		{"missing email", func(in *GenerateInput) { in.Email = "" }},
		{"bad tone", func(in *GenerateInput) { in.Tone = "Sarcastic" }},
		{"bad length", func(in *GenerateInput) { in.Length = "Epic (10 paragraphs)" }},
		{"complexity too low", func(in *GenerateInput) { in.Complexity = 0 }},
		{"complexity too high", func(in *GenerateInput) { in.Complexity = 11 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeClient{letter: "never"}
			svc := &Service{LLM: fake}

			in := validInput()
			tc.mod(&in)

			_, err := svc.Generate(context.Background(), in)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if fake.calls != 0 {
				t.Fatalf("completion client must not be called, got %d calls", fake.calls)
			}
		})
	}
}

func TestGenerateCompletionFailureSurfaces(t *testing.T) {
	fake := &fakeClient{err: llm.NewCompletionError(llm.KindService, fmt.Errorf("rate limited"))}
	svc := &Service{LLM: fake}

	out, err := svc.Generate(context.Background(), validInput())
	var completionErr *llm.CompletionError
	if !errors.As(err, &completionErr) {
		t.Fatalf("expected CompletionError, got %v", err)
	}
	if completionErr.Kind != llm.KindService {
		t.Fatalf("unexpected kind: %s", completionErr.Kind)
	}
	if out.Letter != "" {
		t.Fatalf("no letter must be produced on failure, got %q", out.Letter)
	}
}

func TestGenerateExtractsUploadedDocx(t *testing.T) {
	resume, err := render.Letter("Five years of Go\nBackend services at scale")
	if err != nil {
		t.Fatalf("build docx fixture: %v", err)
	}

	fake := &fakeClient{letter: "a letter"}
	svc := &Service{LLM: fake}

	in := validInput()
	in.ResumeText = ""
	in.ResumeFileName = "resume.docx"
	in.ResumeData = resume

	if _, err := svc.Generate(context.Background(), in); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(fake.prompts) != 1 {
		t.Fatalf("expected one prompt, got %d", len(fake.prompts))
	}
	if !strings.Contains(fake.prompts[0], "Five years of Go") {
		t.Fatalf("prompt missing extracted resume text:\n%s", fake.prompts[0])
	}
}

func TestGenerateMalformedResumePropagates(t *testing.T) {
	fake := &fakeClient{letter: "never"}
	svc := &Service{LLM: fake}

	in := validInput()
	in.ResumeText = ""
	in.ResumeFileName = "resume.docx"
	in.ResumeData = []byte("this is not a zip archive")

	_, err := svc.Generate(context.Background(), in)
	if !errors.Is(err, extract.ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
	if fake.calls != 0 {
		t.Fatalf("completion client must not be called, got %d calls", fake.calls)
	}
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"coverletter-backend/internal/letters"
	"coverletter-backend/internal/llm/openai"
	"coverletter-backend/internal/render"
	"coverletter-backend/internal/shared/config"
)

// The CLI variant uses a smaller completion budget than the API.
const cliMaxOutputTokens = 500

var (
	genName       string
	genEmail      string
	genTone       string
	genComplexity int
	genLength     string
	genCompany    string
	genPosition   string
	genRecipient  string
	genClosing    string
	genOut        string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a cover letter from stdin inputs",
	Long: `Reads a job description and resume highlights from stdin, composes a
prompt from them plus the style flags, and prints the generated letter.
Use --out to also write the letter as a DOCX file.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genName, "name", "n", "", "Your full name (required)")
	generateCmd.Flags().StringVar(&genEmail, "email", "", "Your email address (required)")
	generateCmd.Flags().StringVar(&genTone, "tone", "Professional", "Tone: Professional, Friendly, Enthusiastic, Confident or Concise")
	generateCmd.Flags().IntVar(&genComplexity, "complexity", 5, "Wording complexity from 1 (simple) to 10 (elaborate)")
	generateCmd.Flags().StringVar(&genLength, "length", "standard", "Length: short, standard or detailed")
	generateCmd.Flags().StringVar(&genCompany, "company", "", "Company name (optional)")
	generateCmd.Flags().StringVar(&genPosition, "position", "", "Position title (optional)")
	generateCmd.Flags().StringVar(&genRecipient, "recipient", "", "Greeting recipient name (optional)")
	generateCmd.Flags().StringVar(&genClosing, "closing", "", "Custom closing phrase (optional)")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "Write the letter as DOCX to this path (optional)")
	_ = generateCmd.MarkFlagRequired("name")
	_ = generateCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	tone, err := resolveTone(genTone)
	if err != nil {
		return err
	}
	length, err := resolveLength(genLength)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	jobText, err := promptLine(reader, "Paste the job description URL or text:")
	if err != nil {
		return err
	}
	resumeText, err := promptLine(reader, "Paste your resume bullet points (comma-separated):")
	if err != nil {
		return err
	}

	client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cliMaxOutputTokens)
	if err != nil {
		return err
	}
	svc := &letters.Service{LLM: client, Model: cfg.LLMModel}

	out, err := svc.Generate(context.Background(), letters.GenerateInput{
		JobText:       jobText,
		ResumeText:    resumeText,
		FullName:      genName,
		Email:         genEmail,
		Tone:          tone,
		Complexity:    genComplexity,
		Length:        length,
		CompanyName:   genCompany,
		PositionTitle: genPosition,
		RecipientName: genRecipient,
		ClosingPhrase: genClosing,
	})
	if err != nil {
		return err
	}

	fmt.Println("\n--- Generated Cover Letter ---")
	fmt.Println()
	fmt.Println(out.Letter)

	if genOut != "" {
		data, err := render.Letter(out.Letter)
		if err != nil {
			return fmt.Errorf("export letter: %w", err)
		}
		if err := os.WriteFile(genOut, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", genOut, err)
		}
		fmt.Printf("\nSaved DOCX to %s\n", genOut)
	}
	return nil
}

func promptLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Println(prompt)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func resolveTone(raw string) (string, error) {
	for _, tone := range letters.Tones {
		if strings.EqualFold(strings.TrimSpace(raw), tone) {
			return tone, nil
		}
	}
	return "", fmt.Errorf("unknown tone %q, expected one of %s", raw, strings.Join(letters.Tones, ", "))
}

func resolveLength(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "short":
		return letters.Lengths[0], nil
	case "standard":
		return letters.Lengths[1], nil
	case "detailed":
		return letters.Lengths[2], nil
	}
	// Accept the full preset label as well.
	for _, length := range letters.Lengths {
		if strings.EqualFold(strings.TrimSpace(raw), length) {
			return length, nil
		}
	}
	return "", fmt.Errorf("unknown length %q, expected short, standard or detailed", raw)
}

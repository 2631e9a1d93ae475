package extract

import (
	"errors"
	"strings"
	"testing"

	"coverletter-backend/internal/render"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		fileName string
		want     Kind
	}{
		{"resume.pdf", KindPDF},
		{"Resume.PDF", KindPDF},
		{"resume.docx", KindDOCX},
		{"RESUME.DocX", KindDOCX},
		{"resume.txt", KindUnsupported},
		{"resume.doc", KindUnsupported},
		{"resume", KindUnsupported},
		{"archive.pdf.zip", KindUnsupported},
	}
	for _, tc := range cases {
		if got := Detect(tc.fileName); got != tc.want {
			t.Fatalf("Detect(%q) = %v, want %v", tc.fileName, got, tc.want)
		}
	}
}

func TestTextUnsupportedExtensionYieldsEmpty(t *testing.T) {
	text, err := Text("resume.txt", []byte("some bytes"))
	if err != nil {
		t.Fatalf("unsupported extension must not error: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty string, got %q", text)
	}
}

func TestTextDocxParagraphSegments(t *testing.T) {
	// Three lines, the middle one empty; each becomes one paragraph.
	data, err := render.Letter("First paragraph\n\nThird paragraph")
	if err != nil {
		t.Fatalf("build docx: %v", err)
	}

	text, err := Text("resume.docx", data)
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}

	segments := strings.Split(text, "\n\n")
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d: %q", len(segments), segments)
	}
	if segments[0] != "First paragraph" {
		t.Fatalf("unexpected first segment: %q", segments[0])
	}
	if segments[1] != "" {
		t.Fatalf("empty paragraph must be preserved as empty segment, got %q", segments[1])
	}
	if segments[2] != "Third paragraph" {
		t.Fatalf("unexpected last segment: %q", segments[2])
	}
}

func TestTextDocxPreservesOrder(t *testing.T) {
	data, err := render.Letter("alpha\nbeta\ngamma\ndelta")
	if err != nil {
		t.Fatalf("build docx: %v", err)
	}

	text, err := Text("resume.docx", data)
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}

	want := "alpha\n\nbeta\n\ngamma\n\ndelta"
	if text != want {
		t.Fatalf("unexpected extraction:\n%q\nwant:\n%q", text, want)
	}
}

func TestTextMalformedDocx(t *testing.T) {
	_, err := Text("resume.docx", []byte("this is not a zip archive"))
	if !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
}

func TestTextMalformedPDF(t *testing.T) {
	_, err := Text("resume.pdf", []byte("this is not a pdf"))
	if !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
}

func TestParagraphsSplitsDocumentXML(t *testing.T) {
	content := `<w:document xmlns:w="ns"><w:body>` +
		`<w:p><w:r><w:t>one</w:t></w:r><w:r><w:t xml:space="preserve"> two</w:t></w:r></w:p>` +
		`<w:p></w:p>` +
		`<w:p><w:r><w:t>three</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	got := paragraphs(content)
	want := []string{"one two", "", "three"}
	if len(got) != len(want) {
		t.Fatalf("expected %d paragraphs, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("paragraph %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

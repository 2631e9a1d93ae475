package extract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Kind identifies a supported resume document format. The format is resolved
// once at the boundary from the filename; extraction dispatches on the kind.
type Kind int

const (
	KindUnsupported Kind = iota
	KindPDF
	KindDOCX
)

const segmentSeparator = "\n\n"

// ErrMalformedDocument reports a payload that cannot be parsed as its
// claimed format.
var ErrMalformedDocument = errors.New("malformed document")

// Detect resolves the document kind from the filename extension,
// case-insensitively.
func Detect(fileName string) Kind {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return KindPDF
	case ".docx":
		return KindDOCX
	default:
		return KindUnsupported
	}
}

func (k Kind) String() string {
	switch k {
	case KindPDF:
		return "pdf"
	case KindDOCX:
		return "docx"
	default:
		return "unsupported"
	}
}

// Text extracts the plain text of an uploaded document. Segments (PDF pages
// or DOCX paragraphs) are joined with a blank line in original order, and a
// segment whose native extraction yields nothing contributes an empty
// string. Unsupported extensions yield an empty string with no error.
func Text(fileName string, data []byte) (string, error) {
	switch Detect(fileName) {
	case KindPDF:
		return pdfText(data)
	case KindDOCX:
		return docxText(data)
	default:
		return "", nil
	}
}

// pdfText extracts page text via github.com/ledongthuc/pdf.
func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	segments := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			segments = append(segments, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Pages with no extractable text degrade to empty segments.
			segments = append(segments, "")
			continue
		}
		segments = append(segments, text)
	}
	return strings.Join(segments, segmentSeparator), nil
}

// docxText extracts paragraph text via github.com/nguyenthenguyen/docx.
func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	defer doc.Close()

	return strings.Join(paragraphs(doc.Editable().GetContent()), segmentSeparator), nil
}

// paragraphs splits word/document.xml content into per-paragraph text,
// preserving empty paragraphs as empty segments.
func paragraphs(content string) []string {
	decoder := xml.NewDecoder(strings.NewReader(content))
	var segments []string
	var current strings.Builder
	inParagraph := false
	inText := false
	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				current.Reset()
				inParagraph = true
			case "t":
				inText = inParagraph
			}
		case xml.CharData:
			if inText {
				current.Write([]byte(t))
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if inParagraph {
					segments = append(segments, current.String())
				}
				inParagraph = false
			case "t":
				inText = false
			}
		}
	}
	return segments
}

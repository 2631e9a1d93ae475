package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Fixed download metadata for the export artifact.
const (
	FileName = "cover_letter.docx"
	MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Font size in half-points; 22 renders as 11pt.
const fontSizeHalfPoints = "22"

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`

const documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>`

const documentFooter = `</w:body>
</w:document>`

// Letter serializes the generated letter into a minimal DOCX package: one
// paragraph per line, empty lines preserved as empty paragraphs, uniform
// font size, no styles or metadata beyond that.
func Letter(letter string) ([]byte, error) {
	var output bytes.Buffer
	writer := zip.NewWriter(&output)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", documentXML(letter)},
	}
	for _, part := range parts {
		w, err := writer.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("export %s: %w", part.name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("export close: %w", err)
	}
	return output.Bytes(), nil
}

func documentXML(letter string) string {
	var buf strings.Builder
	buf.WriteString(documentHeader)
	for _, line := range strings.Split(letter, "\n") {
		buf.WriteString(paragraphXML(line))
	}
	buf.WriteString(documentFooter)
	return buf.String()
}

func paragraphXML(line string) string {
	sizeProps := `<w:rPr><w:sz w:val="` + fontSizeHalfPoints + `"/><w:szCs w:val="` + fontSizeHalfPoints + `"/></w:rPr>`
	if line == "" {
		return `<w:p><w:pPr>` + sizeProps + `</w:pPr></w:p>`
	}
	return `<w:p><w:pPr>` + sizeProps + `</w:pPr>` +
		`<w:r>` + sizeProps + `<w:t xml:space="preserve">` + escapeXML(line) + `</w:t></w:r></w:p>`
}

func escapeXML(raw string) string {
	var buf bytes.Buffer
	// EscapeText only fails on writer errors, which bytes.Buffer never returns.
	_ = xml.EscapeText(&buf, []byte(raw))
	return buf.String()
}

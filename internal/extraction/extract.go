// Package extraction provides plain-text extraction from resume source
// documents. The supported formats (PDF, DOCX, TXT, HTML) are handled by
// external libraries treated as opaque collaborators; this package only
// normalizes their output into newline-separated text.
package extraction

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractText reads the file at path and returns its plain text content.
// The extractor is chosen by file extension.
func ExtractText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", &ReadError{Path: path, Cause: err}
		}
		return string(data), nil

	case ".pdf":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", &ReadError{Path: path, Cause: err}
		}
		text, err := extractPDFText(data)
		if err != nil {
			return "", &ReadError{Path: path, Cause: err}
		}
		return text, nil

	case ".docx":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", &ReadError{Path: path, Cause: err}
		}
		text, err := extractDocxText(data)
		if err != nil {
			return "", &ReadError{Path: path, Cause: err}
		}
		return text, nil

	case ".html", ".htm":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", &ReadError{Path: path, Cause: err}
		}
		text, err := extractHTMLText(data)
		if err != nil {
			return "", &ReadError{Path: path, Cause: err}
		}
		return text, nil

	default:
		return "", &UnsupportedFormatError{Path: path, Extension: ext}
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var textBuilder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer func() { _ = doc.Close() }()

	return docxContentToText(doc.Editable().GetContent()), nil
}

// docxContentToText flattens the raw document XML into paragraph-per-line
// text. Paragraph boundaries become newlines so the section splitter sees
// heading lines the same way it does for TXT input.
func docxContentToText(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	var sb strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func extractHTMLText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	var lines []string
	doc.Find("h1, h2, h3, h4, p, li, div").Each(func(_ int, s *goquery.Selection) {
		// Skip container nodes; only leaf-ish nodes contribute lines,
		// otherwise text repeats once per ancestor.
		if s.Children().Length() > 0 && s.Is("div") {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			lines = append(lines, text)
		}
	})

	if len(lines) == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}
	return strings.Join(lines, "\n"), nil
}

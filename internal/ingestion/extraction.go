package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"golang.org/x/text/encoding/charmap"
)

// Format identifies a supported résumé document format
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatText Format = "txt"
	FormatHTML Format = "html"
)

var (
	docxParagraphRE = regexp.MustCompile(`</w:p>|<w:br\s*/>|<w:tab\s*/>`)
	xmlTagRE        = regexp.MustCompile(`<[^>]+>`)
)

// UnsupportedFormatError is returned for file extensions outside pdf, docx, txt and html
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Extension == "" {
		return "unsupported file type: missing extension (allowed: pdf, docx, txt, html)"
	}
	return fmt.Sprintf("unsupported file type: %s (allowed: pdf, docx, txt, html)", e.Extension)
}

// ExtractionError represents a failure to read text out of a document
type ExtractionError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s extraction failed: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s extraction failed: %s", e.Format, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// FormatOf maps a file name to its document format, or "" when unsupported
func FormatOf(fileName string) Format {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	case ".txt":
		return FormatText
	case ".html", ".htm":
		return FormatHTML
	default:
		return ""
	}
}

// ExtractText returns the plain text of a document, choosing the extractor by file extension
func ExtractText(fileName string, data []byte) (string, error) {
	switch FormatOf(fileName) {
	case FormatPDF:
		return extractPDF(data)
	case FormatDOCX:
		return extractDOCX(data)
	case FormatText:
		return decodeText(data), nil
	case FormatHTML:
		return extractHTML(data)
	default:
		return "", &UnsupportedFormatError{Extension: strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")}
	}
}

// extractPDF concatenates the plain text of every page
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: FormatPDF, Message: "failed to open document", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Format: FormatPDF, Message: fmt.Sprintf("failed to read page %d", i), Cause: err}
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// extractDOCX reads word/document.xml and turns paragraphs into lines
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: FormatDOCX, Message: "failed to open document", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	content = docxParagraphRE.ReplaceAllString(content, "\n")
	content = xmlTagRE.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}

// extractHTML drops scripts and styles and keeps block elements on separate lines
func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &ExtractionError{Format: FormatHTML, Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, div, li, tr, h1, h2, h3, h4, h5, h6, section, header, footer").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	body := doc.Find("body")
	if body.Length() == 0 {
		return doc.Text(), nil
	}
	return body.Text(), nil
}

// decodeText reads UTF-8, falling back to Latin-1 for legacy encodings
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return string(bytes.ToValidUTF8(data, []byte("?")))
	}
	return string(decoded)
}

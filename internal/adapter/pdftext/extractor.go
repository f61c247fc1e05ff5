package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Extractor reads the plain text layer of PDF files.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText implements domain.DocumentTextExtractor. The returned text is
// already cleaned with CleanText.
func (e *Extractor) ExtractText(ctx context.Context, path string) (text string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// The parser panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("failed to parse PDF %s: %v", path, r)
		}
	}()

	file, reader, err := pdf.Open(path)
	if file != nil {
		defer file.Close()
	}
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", path, err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read text from PDF %s: %w", path, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("failed to read text from PDF %s: %w", path, err)
	}

	return CleanText(buf.String()), nil
}

// CleanText drops invalid UTF-8, strips ASCII control characters other than
// tab, newline and carriage return, collapses whitespace runs into one space
// and trims the result.
func CleanText(text string) string {
	text = strings.ToValidUTF8(text, "")
	text = strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		if r < 0x20 || r == 0x7F {
			return -1
		}
		return r
	}, text)
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

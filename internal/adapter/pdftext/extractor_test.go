package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses whitespace", "  Hello \n\n\t world  ", "Hello world"},
		{"drops control characters", "a\x00b\x07c\x1Fd\x7Fe", "abcde"},
		{"drops invalid utf8", "caf\xc3\xa9 \xff\xfeok", "café ok"},
		{"keeps c1 characters", "a\u0090b", "a\u0090b"},
		{"empty", " \n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

// writeTextPDF writes a one-page PDF whose content stream shows text in
// Helvetica, with a correct xref table.
func writeTextPDF(t *testing.T, text string) string {
	t.Helper()

	content := fmt.Sprintf("BT /F1 24 Tf 72 720 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	path := filepath.Join(t.TempDir(), "lesson.pdf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestExtractor_ExtractText(t *testing.T) {
	path := writeTextPDF(t, "Go is a programming language")

	text, err := NewExtractor().ExtractText(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Go is a programming language", text)
}

func TestExtractor_ExtractText_MissingFile(t *testing.T) {
	_, err := NewExtractor().ExtractText(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}

func TestExtractor_ExtractText_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0o600))

	text, err := NewExtractor().ExtractText(context.Background(), path)
	assert.Error(t, err)
	assert.Empty(t, text)
}

func TestExtractor_ExtractText_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExtractor().ExtractText(ctx, "any.pdf")
	assert.ErrorIs(t, err, context.Canceled)
}

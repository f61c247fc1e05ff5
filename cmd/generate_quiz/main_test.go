package main

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"elearn-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteQuiz(t *testing.T) {
	var buf bytes.Buffer
	quiz := &domain.GeneratedQuiz{Data: map[string]interface{}{
		"name":      "Q",
		"questions": []interface{}{map[string]interface{}{"title": "A?", "correctAnswer": 1}},
	}}

	require.NoError(t, writeQuiz(&buf, quiz))
	assert.JSONEq(t, `{"data":{"name":"Q","questions":[{"title":"A?","correctAnswer":1}]}}`, buf.String())
}

func TestWriteQuiz_EncodeError(t *testing.T) {
	var buf bytes.Buffer
	quiz := &domain.GeneratedQuiz{Data: map[string]interface{}{"name": math.NaN()}}

	err := writeQuiz(&buf, quiz)
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestReadSource_TextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Goroutines\n\n are cheap \x00"), 0o600))

	text, err := readSource(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Goroutines are cheap", text)
}

package quizgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"elearn-api/internal/domain"

	"github.com/xeipuuv/gojsonschema"
)

var (
	errNoFence  = errors.New("no fenced code block found")
	errNoObject = errors.New("no JSON object found")
)

var fencedBlockPattern = regexp.MustCompile("```(?:json)?\\s*\\n?([\\s\\S]*?)\\n?```")

// quizShapeSchema is the minimal contract of a generated quiz. Question
// entries are deliberately left unconstrained.
const quizShapeSchema = `{
  "type": "object",
  "minProperties": 1,
  "required": ["name", "questions"],
  "properties": {
    "name": {"not": {"type": "null"}},
    "questions": {"type": "array"}
  }
}`

var quizSchema = mustCompileSchema(quizShapeSchema)

func mustCompileSchema(source string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		panic(fmt.Sprintf("quizgen: invalid quiz schema: %v", err))
	}
	return schema
}

// extractionStrategy turns raw model output into a decoded JSON value.
type extractionStrategy struct {
	name   string
	decode func(raw string) (interface{}, error)
}

var extractionStrategies = []extractionStrategy{
	{name: "fenced_block", decode: decodeFencedBlock},
	{name: "object_span", decode: decodeObjectSpan},
	{name: "raw_text", decode: decodeJSON},
}

// ExtractQuiz recovers a quiz from raw model output. Strategies run in order
// and the first result passing ValidateQuizShape wins. The decoded value is
// returned untouched.
func ExtractQuiz(raw string) (*domain.GeneratedQuiz, error) {
	var lastErr error
	for _, strategy := range extractionStrategies {
		value, err := strategy.decode(raw)
		if err != nil {
			lastErr = err
			continue
		}
		data, err := ValidateQuizShape(value)
		if err != nil {
			lastErr = err
			continue
		}
		return &domain.GeneratedQuiz{Data: data}, nil
	}
	return nil, domain.NewAIExtractionError(lastErr, raw)
}

// ValidateQuizShape checks that value is a non-empty object carrying a
// non-null "name" and an array "questions".
func ValidateQuizShape(value interface{}) (map[string]interface{}, error) {
	result, err := quizSchema.Validate(gojsonschema.NewGoLoader(value))
	if err != nil {
		return nil, fmt.Errorf("failed to validate quiz shape: %w", err)
	}
	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, resultErr := range result.Errors() {
			messages = append(messages, resultErr.String())
		}
		return nil, fmt.Errorf("invalid quiz shape: %s", strings.Join(messages, "; "))
	}
	data, ok := value.(map[string]interface{})
	if !ok {
		return nil, errors.New("invalid quiz shape: expected a JSON object")
	}
	return data, nil
}

func decodeJSON(text string) (interface{}, error) {
	var value interface{}
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, err
	}
	return value, nil
}

func decodeFencedBlock(raw string) (interface{}, error) {
	match := fencedBlockPattern.FindStringSubmatch(raw)
	if match == nil {
		return nil, errNoFence
	}
	return decodeJSON(match[1])
}

// decodeObjectSpan tries every balanced top-level {...} span in order and
// returns the first one that decodes to a valid quiz. When none qualifies it
// falls back to the span between the first '{' and the last '}'.
func decodeObjectSpan(raw string) (interface{}, error) {
	var lastErr error
	start := strings.IndexByte(raw, '{')
	for start >= 0 {
		end := matchingBrace(raw, start)
		if end < 0 {
			start = nextOpenBrace(raw, start+1)
			continue
		}
		value, err := decodeJSON(raw[start : end+1])
		if err == nil {
			if _, err = ValidateQuizShape(value); err == nil {
				return value, nil
			}
		}
		lastErr = err
		start = nextOpenBrace(raw, end+1)
	}

	first := strings.IndexByte(raw, '{')
	last := strings.LastIndexByte(raw, '}')
	if first < 0 || last <= first {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, errNoObject
	}
	return decodeJSON(raw[first : last+1])
}

func nextOpenBrace(raw string, from int) int {
	if from >= len(raw) {
		return -1
	}
	idx := strings.IndexByte(raw[from:], '{')
	if idx < 0 {
		return -1
	}
	return from + idx
}

// matchingBrace returns the index of the '}' closing the object opened at
// start, or -1 when the object is never closed. Braces inside JSON strings
// are ignored.
func matchingBrace(raw string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		ch := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

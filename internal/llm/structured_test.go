package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type questionPayload struct {
	Questions []string `json:"questions"`
}

func TestExtractJSON_PlainObject(t *testing.T) {
	raw := `{"questions": ["a?", "b?"]}`
	got, err := ExtractJSON[questionPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a?", "b?"}, got.Questions)
}

func TestExtractJSON_CodeFencesAndProse(t *testing.T) {
	raw := "Sure! Here are the questions:\n```json\n{\"questions\": [\"x?\"]}\n```\nLet me know if you need more."
	got, err := ExtractJSON[questionPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"x?"}, got.Questions)
}

func TestExtractJSON_NestedBracesInStrings(t *testing.T) {
	raw := `prefix {"questions": ["why {braces}?"]} suffix`
	got, err := ExtractJSON[questionPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"why {braces}?"}, got.Questions)
}

func TestExtractJSON_StripsComments(t *testing.T) {
	raw := `{
		// the questions
		"questions": ["q?"] /* inline */
	}`
	got, err := ExtractJSON[questionPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"q?"}, got.Questions)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[questionPayload]("no json here", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	validator := func(p questionPayload) error {
		if len(p.Questions) == 0 {
			return fmt.Errorf("empty questions")
		}
		return nil
	}
	_, err := ExtractJSON[questionPayload](`{"questions": []}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	_, err := ExtractJSON[questionPayload](`{"questions": [}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type suggestionPayload struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

func TestExtractJSON_CleanObject(t *testing.T) {
	raw := `{"id":"mat-ce1","reason":"treballa el càlcul"}`
	result, err := ExtractJSON[suggestionPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "mat-ce1", result.ID)
}

func TestExtractJSON_TopLevelArray(t *testing.T) {
	raw := `[{"id":"mat-ce1","reason":"càlcul"},{"id":"med-ce1","reason":"medi natural"}]`
	result, err := ExtractJSON[[]suggestionPayload](raw, nil)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "med-ce1", result[1].ID)
}

func TestExtractJSON_FencedArray(t *testing.T) {
	raw := "```json\n[{\"id\":\"mat-ce2\",\"reason\":\"geometria\"}]\n```"
	result, err := ExtractJSON[[]suggestionPayload](raw, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "mat-ce2", result[0].ID)
}

func TestExtractJSON_ArrayInsideProse(t *testing.T) {
	raw := "Aquests són els elements que encaixen:\n[{\"id\":\"mat-ce1\",\"reason\":\"càlcul\"}]\nEspero que ajudi!"
	result, err := ExtractJSON[[]suggestionPayload](raw, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
}

func TestExtractJSON_NestedBrackets(t *testing.T) {
	type wrapper struct {
		Items []suggestionPayload `json:"items"`
	}
	raw := `{"items":[{"id":"a","reason":"x"},{"id":"b","reason":"y"}]}`
	result, err := ExtractJSON[wrapper](raw, nil)
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
}

func TestExtractJSON_BracketsInsideStrings(t *testing.T) {
	raw := `[{"id":"a","reason":"conté [claudàtors] i {claus}"}]`
	result, err := ExtractJSON[[]suggestionPayload](raw, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "conté [claudàtors] i {claus}", result[0].Reason)
}

func TestExtractJSON_StripsComments(t *testing.T) {
	raw := "{\n  \"id\": \"mat-ce1\", // el més rellevant\n  \"reason\": \"càlcul\"\n}"
	result, err := ExtractJSON[suggestionPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "mat-ce1", result.ID)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[suggestionPayload]("no puc ajudar amb això", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	_, err := ExtractJSON[suggestionPayload](`{"id": broken}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorFailure(t *testing.T) {
	validator := func(p suggestionPayload) error {
		if p.ID == "" {
			return fmt.Errorf("id is required")
		}
		return nil
	}
	_, err := ExtractJSON(`{"reason":"sense id"}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}

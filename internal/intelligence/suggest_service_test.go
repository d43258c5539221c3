package intelligence

import (
	"context"
	"testing"

	"github.com/mvilaseca/eduplan/internal/llm"
	"github.com/mvilaseca/eduplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestService_ParsesAndFilters(t *testing.T) {
	client := &stubClient{generateText: `Aquí tens les propostes:
[{"id":"mat-ce1","reason":"treballa el càlcul"},{"id":"inventat-ce9","reason":"no existeix"},{"id":"med-ce1","reason":"observació del medi"}]`}
	svc := NewSuggestService(client, testutil.NewTestCatalog())

	links, err := svc.SuggestLinks(context.Background(), "Mercat de tardor", "Joc de compra-venda amb monedes.")
	require.NoError(t, err)

	// The invented id is dropped; catalog-backed ones survive in order.
	require.Len(t, links, 2)
	assert.Equal(t, "mat-ce1", links[0].ID)
	assert.Equal(t, "med-ce1", links[1].ID)
	assert.Equal(t, "treballa el càlcul", links[0].Reason)

	assert.Equal(t, llm.TaskSuggest, client.lastGenerate.Task)
	assert.Contains(t, client.lastGenerate.UserPrompt, "Mercat de tardor")
	// The catalog context travels in the prompt, one entry per item.
	assert.Contains(t, client.lastGenerate.UserPrompt, `"id":"mat-ce2"`)
	assert.Contains(t, client.lastGenerate.UserPrompt, "Geometria:")
}

func TestSuggestService_CapsAtMax(t *testing.T) {
	client := &stubClient{generateText: `[
{"id":"mat-ce1","reason":"a"},
{"id":"mat-ce2","reason":"b"},
{"id":"med-ce1","reason":"c"},
{"id":"mat-ce1","reason":"d"}]`}
	svc := NewSuggestService(client, testutil.NewTestCatalog())

	links, err := svc.SuggestLinks(context.Background(), "Títol", "Descripció")
	require.NoError(t, err)
	assert.Len(t, links, maxSuggestions)
}

func TestSuggestService_MissingID(t *testing.T) {
	client := &stubClient{generateText: `[{"reason":"sense id"}]`}
	svc := NewSuggestService(client, testutil.NewTestCatalog())

	_, err := svc.SuggestLinks(context.Background(), "Títol", "Descripció")
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestSuggestService_ClientError(t *testing.T) {
	client := &stubClient{generateErr: llm.ErrRetryExhausted}
	svc := NewSuggestService(client, testutil.NewTestCatalog())

	_, err := svc.SuggestLinks(context.Background(), "Títol", "Descripció")
	assert.ErrorIs(t, err, llm.ErrRetryExhausted)
}

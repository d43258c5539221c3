package intelligence

import (
	"context"
	"testing"

	"github.com/mvilaseca/eduplan/internal/domain"
	"github.com/mvilaseca/eduplan/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftService_Describe(t *testing.T) {
	client := &stubClient{generateText: "  Objectiu didàctic: **treballar el càlcul**.  "}
	svc := NewDraftService(client)

	text, err := svc.Describe(context.Background(), "Mercat de tardor", domain.Grade3)
	require.NoError(t, err)

	// Markdown bold markers are stripped and the text trimmed.
	assert.Equal(t, "Objectiu didàctic: treballar el càlcul.", text)

	assert.Equal(t, llm.TaskDescribe, client.lastGenerate.Task)
	assert.Contains(t, client.lastGenerate.UserPrompt, "Mercat de tardor")
	assert.Contains(t, client.lastGenerate.UserPrompt, "3r")
}

func TestDraftService_Expand(t *testing.T) {
	client := &stubClient{generateText: "Introducció...\nDesenvolupament...\nTancament..."}
	svc := NewDraftService(client)

	text, err := svc.Expand(context.Background(), "Mercat de tardor", "Joc de compra-venda.", domain.Grade3)
	require.NoError(t, err)
	assert.Contains(t, text, "Desenvolupament")

	assert.Equal(t, llm.TaskExpand, client.lastGenerate.Task)
	assert.Contains(t, client.lastGenerate.UserPrompt, "Joc de compra-venda.")
}

func TestDraftService_Evaluation(t *testing.T) {
	client := &stubClient{generateText: "Indicadors observables..."}
	svc := NewDraftService(client)

	text, err := svc.Evaluation(context.Background(), "Mercat", "Descripció", domain.Grade3)
	require.NoError(t, err)
	assert.Equal(t, "Indicadors observables...", text)
	assert.Equal(t, llm.TaskEvaluate, client.lastGenerate.Task)
}

func TestDraftService_PropagatesErrors(t *testing.T) {
	client := &stubClient{generateErr: llm.ErrOllamaUnavailable}
	svc := NewDraftService(client)

	_, err := svc.Describe(context.Background(), "Mercat", domain.Grade3)
	assert.ErrorIs(t, err, llm.ErrOllamaUnavailable)
}

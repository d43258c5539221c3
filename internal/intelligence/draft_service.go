// Package intelligence hosts the LLM-backed assistant services: text
// drafting, rubric generation, curriculum link suggestions and the
// planning chat. Each service owns its prompts and output cleanup; the
// transport lives in the llm package.
package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/mvilaseca/eduplan/internal/domain"
	"github.com/mvilaseca/eduplan/internal/llm"
)

// DraftService generates teacher-facing text for an activity.
type DraftService interface {
	// Describe drafts a short technical description from the activity
	// title and grade.
	Describe(ctx context.Context, title string, grade domain.Grade) (string, error)

	// Expand drafts a step-by-step teaching sequence from an existing
	// short description.
	Expand(ctx context.Context, title, description string, grade domain.Grade) (string, error)

	// Evaluation drafts observable evaluation indicators and
	// instruments for the activity.
	Evaluation(ctx context.Context, title, description string, grade domain.Grade) (string, error)
}

type draftService struct {
	client llm.Client
}

// NewDraftService creates a DraftService backed by an LLM client.
func NewDraftService(client llm.Client) DraftService {
	return &draftService{client: client}
}

func (s *draftService) Describe(ctx context.Context, title string, grade domain.Grade) (string, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:       llm.TaskDescribe,
		UserPrompt: fmt.Sprintf(describePromptTemplate, title, grade),
	})
	if err != nil {
		return "", fmt.Errorf("drafting description: %w", err)
	}
	return cleanText(resp.Text), nil
}

func (s *draftService) Expand(ctx context.Context, title, description string, grade domain.Grade) (string, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:       llm.TaskExpand,
		UserPrompt: fmt.Sprintf(expandPromptTemplate, title, description, grade),
	})
	if err != nil {
		return "", fmt.Errorf("expanding activity: %w", err)
	}
	return cleanText(resp.Text), nil
}

func (s *draftService) Evaluation(ctx context.Context, title, description string, grade domain.Grade) (string, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:       llm.TaskEvaluate,
		UserPrompt: fmt.Sprintf(evaluationPromptTemplate, title, description, grade),
	})
	if err != nil {
		return "", fmt.Errorf("drafting evaluation: %w", err)
	}
	return cleanText(resp.Text), nil
}

// cleanText strips markdown bold markers the model emits despite the
// plain-text instruction, and trims surrounding whitespace.
func cleanText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "**", ""))
}

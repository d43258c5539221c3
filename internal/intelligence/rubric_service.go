package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/mvilaseca/eduplan/internal/catalog"
	"github.com/mvilaseca/eduplan/internal/domain"
	"github.com/mvilaseca/eduplan/internal/llm"
)

// RubricService generates a rubric document for an activity as an HTML
// fragment suitable for pasting into Google Docs.
type RubricService interface {
	Generate(ctx context.Context, a *domain.Activity) (string, error)
}

type rubricService struct {
	client  llm.Client
	catalog *catalog.Catalog
}

// NewRubricService creates a RubricService backed by an LLM client and
// the curriculum catalog.
func NewRubricService(client llm.Client, c *catalog.Catalog) RubricService {
	return &rubricService{client: client, catalog: c}
}

func (s *rubricService) Generate(ctx context.Context, a *domain.Activity) (string, error) {
	prompt := fmt.Sprintf(rubricPromptTemplate,
		a.Title, a.Description, a.Grade, s.criteriaList(a), a.Title)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:       llm.TaskRubric,
		UserPrompt: prompt,
	})
	if err != nil {
		return "", fmt.Errorf("generating rubric: %w", err)
	}

	return cleanHTML(resp.Text), nil
}

// criteriaList renders the activity's selected criteria one per line,
// each prefixed with the competency code of a linked catalog item that
// lists it, so the rubric carries the official nomenclature.
func (s *rubricService) criteriaList(a *domain.Activity) string {
	if len(a.Criteria) == 0 {
		return "Cap criteri específic seleccionat."
	}

	var b strings.Builder
	for _, crit := range a.Criteria {
		b.WriteString("- ")
		if code := s.codeForCriterion(a, crit); code != "" {
			b.WriteString(code)
			b.WriteString(" - ")
		}
		b.WriteString(crit)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *rubricService) codeForCriterion(a *domain.Activity, criterion string) string {
	for _, id := range a.CurriculumIDs {
		item, ok := s.catalog.FindByID(id)
		if !ok {
			continue
		}
		if item.HasCriterion(criterion) {
			return item.CompetencyCode
		}
	}
	return ""
}

// cleanHTML strips markdown code fences the model sometimes wraps the
// fragment in.
func cleanHTML(s string) string {
	s = strings.ReplaceAll(s, "```html", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

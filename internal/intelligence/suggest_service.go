package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mvilaseca/eduplan/internal/catalog"
	"github.com/mvilaseca/eduplan/internal/llm"
)

// maxSuggestions caps how many curriculum links one suggestion call may
// propose.
const maxSuggestions = 3

// SuggestedLink is one curriculum item the model proposes linking, with
// a short justification for the teacher.
type SuggestedLink struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// SuggestService proposes curriculum links for an activity based on its
// title and description.
type SuggestService interface {
	SuggestLinks(ctx context.Context, title, description string) ([]SuggestedLink, error)
}

type suggestService struct {
	client  llm.Client
	catalog *catalog.Catalog
}

// NewSuggestService creates a SuggestService backed by an LLM client
// and the curriculum catalog.
func NewSuggestService(client llm.Client, c *catalog.Catalog) SuggestService {
	return &suggestService{client: client, catalog: c}
}

// SuggestLinks asks the model to match the activity against the
// catalog. Suggestions whose id does not resolve in the catalog are
// dropped rather than surfaced; the model occasionally invents ids.
func (s *suggestService) SuggestLinks(ctx context.Context, title, description string) ([]SuggestedLink, error) {
	prompt := fmt.Sprintf(suggestPromptTemplate,
		title, description, s.catalogContext(), maxSuggestions)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:       llm.TaskSuggest,
		UserPrompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("suggesting links: %w", err)
	}

	suggestions, err := llm.ExtractJSON[[]SuggestedLink](resp.Text, validateSuggestions)
	if err != nil {
		return nil, fmt.Errorf("parsing suggestions: %w", err)
	}

	var valid []SuggestedLink
	for _, sug := range suggestions {
		if _, ok := s.catalog.FindByID(sug.ID); !ok {
			continue
		}
		valid = append(valid, sug)
		if len(valid) == maxSuggestions {
			break
		}
	}
	return valid, nil
}

// catalogContext serializes a compact view of the catalog for the
// prompt: one JSON object per line with id, area and a combined text
// field.
func (s *suggestService) catalogContext() string {
	var b strings.Builder
	for _, item := range s.catalog.Items() {
		entry := struct {
			ID   string `json:"id"`
			Area string `json:"area"`
			Text string `json:"text"`
		}{
			ID:   item.ID,
			Area: item.Area,
			Text: item.Saber + ": " + item.Description,
		}
		line, err := json.Marshal(entry)
		if err != nil {
			continue
		}
		b.Write(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func validateSuggestions(suggestions []SuggestedLink) error {
	for i, sug := range suggestions {
		if sug.ID == "" {
			return fmt.Errorf("suggestion %d is missing an id", i)
		}
	}
	return nil
}

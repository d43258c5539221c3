package cli

import (
	"fmt"
	"strings"

	"github.com/mvilaseca/eduplan/internal/domain"
)

// resolveActivity finds one activity by id, id prefix or exact title
// (case-insensitive), in that order of preference.
func resolveActivity(app *App, input string) (*domain.Activity, error) {
	if input == "" {
		return nil, fmt.Errorf("activity ID is required")
	}

	activities, err := app.Store.LoadAll()
	if err != nil {
		return nil, err
	}

	// 1. Exact ID match
	for _, a := range activities {
		if a.ID == input {
			return a, nil
		}
	}

	// 2. ID prefix match
	var matches []*domain.Activity
	for _, a := range activities {
		if strings.HasPrefix(a.ID, input) {
			matches = append(matches, a)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		// fall through to title match
	default:
		return nil, fmt.Errorf("activity ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}

	// 3. Exact title match (case-insensitive)
	for _, a := range activities {
		if strings.EqualFold(a.Title, input) {
			return a, nil
		}
	}

	return nil, fmt.Errorf("activity not found: %q", input)
}

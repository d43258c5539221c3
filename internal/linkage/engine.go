// Package linkage maintains the relation between activities, catalog
// items and evaluation criteria. Every path that mutates an activity's
// curriculum links goes through the engine so one invariant always
// holds: each selected criterion belongs to at least one currently
// linked catalog item.
package linkage

import (
	"errors"
	"fmt"

	"github.com/mvilaseca/eduplan/internal/catalog"
	"github.com/mvilaseca/eduplan/internal/domain"
)

// ErrCriterionNotLinked reports a criterion toggle whose text belongs
// to no linked catalog item. A correctly wired caller only offers
// criteria of linked items, so hitting this is a caller bug: log it
// loudly, never swallow it.
var ErrCriterionNotLinked = errors.New("criterion does not belong to any linked curriculum item")

// Engine applies link and criterion mutations against the catalog.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates an Engine over the given catalog.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// ToggleCurriculumLink flips the link between the activity and a
// catalog item, returning an updated draft. Unlinking cascade-removes
// every criterion the item listed, except those still covered by
// another linked item. Linking never auto-selects criteria.
func (e *Engine) ToggleCurriculumLink(a *domain.Activity, curriculumID string) *domain.Activity {
	draft := a.Clone()

	if !draft.HasCurriculumID(curriculumID) {
		draft.CurriculumIDs = append(draft.CurriculumIDs, curriculumID)
		return draft
	}

	kept := draft.CurriculumIDs[:0]
	for _, id := range draft.CurriculumIDs {
		if id != curriculumID {
			kept = append(kept, id)
		}
	}
	draft.CurriculumIDs = kept

	item, ok := e.catalog.FindByID(curriculumID)
	if !ok {
		return draft
	}

	// Keep criteria the unlinked item listed only if a remaining link
	// also lists them.
	keptCrit := draft.Criteria[:0]
	for _, crit := range draft.Criteria {
		if !item.HasCriterion(crit) || e.criterionLinked(draft, crit) {
			keptCrit = append(keptCrit, crit)
		}
	}
	draft.Criteria = keptCrit

	return draft
}

// ToggleCriterion flips membership of the criterion text in the
// activity's selection. Selecting a criterion that belongs to no
// linked item returns ErrCriterionNotLinked; deselecting is always
// allowed.
func (e *Engine) ToggleCriterion(a *domain.Activity, criterionText string) (*domain.Activity, error) {
	draft := a.Clone()

	if draft.HasCriterion(criterionText) {
		kept := draft.Criteria[:0]
		for _, crit := range draft.Criteria {
			if crit != criterionText {
				kept = append(kept, crit)
			}
		}
		draft.Criteria = kept
		return draft, nil
	}

	if !e.criterionLinked(draft, criterionText) {
		return nil, fmt.Errorf("%w: %q", ErrCriterionNotLinked, criterionText)
	}

	draft.Criteria = append(draft.Criteria, criterionText)
	return draft, nil
}

// ApplySuggestedLinks merges suggested catalog ids into the activity's
// links by set union. Re-applying the same suggestion is a no-op;
// existing links are never removed and criteria are never touched.
// Ids that do not resolve in the catalog are skipped.
func (e *Engine) ApplySuggestedLinks(a *domain.Activity, suggestedIDs []string) *domain.Activity {
	draft := a.Clone()
	for _, id := range suggestedIDs {
		if _, ok := e.catalog.FindByID(id); !ok {
			continue
		}
		if !draft.HasCurriculumID(id) {
			draft.CurriculumIDs = append(draft.CurriculumIDs, id)
		}
	}
	return draft
}

// Validate checks the activity before a save commits. It returns every
// violation found, one error per problem, and never fails on the first;
// the form layer surfaces the whole list to the user.
func (e *Engine) Validate(a *domain.Activity) []error {
	var errs []error

	if a.Title == "" {
		errs = append(errs, fmt.Errorf("title is required"))
	}
	if a.Grade == "" {
		errs = append(errs, fmt.Errorf("grade is required"))
	} else if !domain.ValidGrades[a.Grade] {
		errs = append(errs, fmt.Errorf("grade: invalid value %q", a.Grade))
	}
	if a.Term == 0 {
		errs = append(errs, fmt.Errorf("term is required"))
	} else if !domain.ValidTerms[a.Term] {
		errs = append(errs, fmt.Errorf("term: invalid value %d (expected 1, 2 or 3)", a.Term))
	}
	if a.AcademicYear == "" {
		errs = append(errs, fmt.Errorf("academic year is required"))
	}

	seen := make(map[string]bool)
	for _, id := range a.CurriculumIDs {
		if seen[id] {
			errs = append(errs, fmt.Errorf("curriculum item %q is linked more than once", id))
			continue
		}
		seen[id] = true
		if _, ok := e.catalog.FindByID(id); !ok {
			errs = append(errs, fmt.Errorf("curriculum item %q does not exist in the catalog", id))
		}
	}

	for _, crit := range a.Criteria {
		if !e.criterionLinked(a, crit) {
			errs = append(errs, fmt.Errorf("criterion %q does not belong to any linked curriculum item", crit))
		}
	}

	return errs
}

// criterionLinked reports whether any linked catalog item lists the
// criterion text.
func (e *Engine) criterionLinked(a *domain.Activity, criterionText string) bool {
	for _, id := range a.CurriculumIDs {
		item, ok := e.catalog.FindByID(id)
		if !ok {
			continue
		}
		if item.HasCriterion(criterionText) {
			return true
		}
	}
	return false
}

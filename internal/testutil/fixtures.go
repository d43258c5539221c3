package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/mvilaseca/eduplan/internal/catalog"
	"github.com/mvilaseca/eduplan/internal/domain"
)

// Activity options
type ActivityOption func(*domain.Activity)

func WithGrade(g domain.Grade) ActivityOption {
	return func(a *domain.Activity) { a.Grade = g }
}

func WithTerm(t domain.Term) ActivityOption {
	return func(a *domain.Activity) { a.Term = t }
}

func WithYear(year string) ActivityOption {
	return func(a *domain.Activity) { a.AcademicYear = year }
}

func WithDescription(desc string) ActivityOption {
	return func(a *domain.Activity) { a.Description = desc }
}

func WithLinks(ids ...string) ActivityOption {
	return func(a *domain.Activity) { a.CurriculumIDs = ids }
}

func WithCriteria(criteria ...string) ActivityOption {
	return func(a *domain.Activity) { a.Criteria = criteria }
}

func WithTags(tags ...string) ActivityOption {
	return func(a *domain.Activity) { a.Tags = tags }
}

// NewTestActivity creates a valid activity with sensible defaults,
// customizable through options.
func NewTestActivity(title string, opts ...ActivityOption) *domain.Activity {
	a := &domain.Activity{
		ID:           uuid.New().String(),
		Title:        title,
		Grade:        domain.Grade3,
		Term:         domain.Term1,
		AcademicYear: domain.DefaultAcademicYear,
		CreatedAt:    time.Now().UnixMilli(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewTestCatalog builds a small fixed catalog covering two areas, with
// competency code CE1 reused across both areas and a criterion shared
// between two items of the first area.
func NewTestCatalog() *catalog.Catalog {
	return catalog.New([]domain.CurriculumItem{
		{
			ID:             "mat-ce1",
			Area:           "Matemàtiques",
			CompetencyCode: "CE1",
			Saber:          "Numeració i càlcul",
			Description:    "Resoldre situacions quotidianes amb nombres naturals.",
			PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
			Intensity:      domain.IntensityHigh,
			Criteria:       []string{"1.1 Resol problemes de suma i resta.", "1.2 Explica l'estratègia de càlcul."},
		},
		{
			ID:             "mat-ce2",
			Area:           "Matemàtiques",
			CompetencyCode: "CE2",
			Saber:          "Geometria",
			Description:    "Reconèixer figures geomètriques a l'entorn.",
			PlannedGrades:  "Cicle Mitjà",
			Intensity:      domain.IntensityMedium,
			Criteria:       []string{"2.1 Identifica polígons.", "1.2 Explica l'estratègia de càlcul."},
		},
		{
			ID:             "med-ce1",
			Area:           "Coneixement del Medi",
			CompetencyCode: "CE1",
			Saber:          "Éssers vius",
			Description:    "Observar i classificar éssers vius de l'entorn proper.",
			PlannedGrades:  "1r, 2n",
			Intensity:      domain.IntensityLow,
			Criteria:       []string{"1.1 Classifica animals i plantes."},
		},
	})
}

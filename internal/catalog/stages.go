package catalog

import (
	"strings"

	"github.com/mvilaseca/eduplan/internal/domain"
)

// StageMap maps each primary-education cycle to the grades it spans.
// Planned-grade tags in the dataset mix literal grade lists ("1r, 2n")
// with stage names ("Cicle Inicial"), so grade filtering goes through
// this table instead of raw substring checks.
type StageMap map[domain.Stage][]domain.Grade

// DefaultStageMap returns the standard Catalan primary cycles.
func DefaultStageMap() StageMap {
	return StageMap{
		domain.StageInitial: {domain.Grade1, domain.Grade2},
		domain.StageMiddle:  {domain.Grade3, domain.Grade4},
		domain.StageUpper:   {domain.Grade5, domain.Grade6},
	}
}

// StageOf returns the cycle containing the given grade, or "" if the
// grade is not in the map.
func (m StageMap) StageOf(grade domain.Grade) domain.Stage {
	for stage, grades := range m {
		for _, g := range grades {
			if g == grade {
				return stage
			}
		}
	}
	return ""
}

// Matches reports whether a planned-grades tag covers the given grade.
// An empty tag applies to all grades. Otherwise the tag matches if it
// names the grade directly, names the stage the grade belongs to, or
// names a sibling grade of the same stage: planning happens per cycle,
// so a tag covering "2n" also covers "1r".
func (m StageMap) Matches(plannedGrades string, grade domain.Grade) bool {
	if strings.TrimSpace(plannedGrades) == "" {
		return true
	}
	stage := m.StageOf(grade)
	if stage != "" && strings.Contains(plannedGrades, string(stage)) {
		return true
	}
	siblings := m[stage]
	if stage == "" {
		siblings = []domain.Grade{grade}
	}
	for _, g := range siblings {
		if strings.Contains(plannedGrades, string(g)) {
			return true
		}
	}
	return false
}

package domain

// Grade is a primary-school grade level, using the Catalan short forms
// the curriculum dataset is written in.
type Grade string

const (
	Grade1 Grade = "1r"
	Grade2 Grade = "2n"
	Grade3 Grade = "3r"
	Grade4 Grade = "4t"
	Grade5 Grade = "5è"
	Grade6 Grade = "6è"
)

// ValidGrades is the canonical set of accepted grade strings.
var ValidGrades = map[Grade]bool{
	Grade1: true, Grade2: true, Grade3: true,
	Grade4: true, Grade5: true, Grade6: true,
}

// Term is a school trimester.
type Term int

const (
	Term1 Term = 1
	Term2 Term = 2
	Term3 Term = 3
)

// ValidTerms is the canonical set of accepted terms.
var ValidTerms = map[Term]bool{Term1: true, Term2: true, Term3: true}

// Intensity is the pedagogical weight of a curriculum item. Display only.
type Intensity string

const (
	IntensityHigh   Intensity = "Alta"
	IntensityMedium Intensity = "Mitjana"
	IntensityLow    Intensity = "Baixa"
)

// Stage groups grade pairs into the three primary-education cycles.
type Stage string

const (
	StageInitial Stage = "Inicial"
	StageMiddle  Stage = "Mitjà"
	StageUpper   Stage = "Superior"
)

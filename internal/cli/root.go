package cli

import (
	"github.com/mvilaseca/eduplan/internal/catalog"
	"github.com/mvilaseca/eduplan/internal/intelligence"
	"github.com/mvilaseca/eduplan/internal/linkage"
	"github.com/mvilaseca/eduplan/internal/store"
	"github.com/spf13/cobra"
)

// App holds references to the engines and services used by CLI commands.
// The intelligence services are nil when the LLM assistant is disabled;
// commands that need them check and fail with a hint.
type App struct {
	Store   *store.ActivityStore
	Catalog *catalog.Catalog
	Linkage *linkage.Engine

	Draft   intelligence.DraftService
	Rubric  intelligence.RubricService
	Suggest intelligence.SuggestService
	Chat    intelligence.ChatService

	// IsInteractive reports whether stdin is attached to a terminal,
	// gating the interactive forms and the chat TUI.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "eduplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "eduplan",
		Short: "Classroom activity planner for the Catalan primary curriculum",
	}

	root.AddCommand(
		newActivityCmd(app),
		newCurriculumCmd(app),
		newStatsCmd(app),
		newExportCmd(app),
		newSuggestCmd(app),
		newDraftCmd(app),
		newChatCmd(app),
	)

	return root
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mvilaseca/eduplan/internal/catalog"
	"github.com/mvilaseca/eduplan/internal/cli"
	"github.com/mvilaseca/eduplan/internal/db"
	"github.com/mvilaseca/eduplan/internal/intelligence"
	"github.com/mvilaseca/eduplan/internal/linkage"
	"github.com/mvilaseca/eduplan/internal/llm"
	"github.com/mvilaseca/eduplan/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.eduplan/eduplan.db
	dbPath := os.Getenv("EDUPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".eduplan", "eduplan.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	cat := catalog.Default()

	app := &cli.App{
		Store:   store.NewActivityStore(store.NewSQLiteStorage(database), os.Stderr),
		Catalog: cat,
		Linkage: linkage.NewEngine(cat),
	}

	// Detect interactive terminal for forms and the chat TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Wire assistant services only when the LLM is enabled.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client := llm.NewOllamaClient(llmCfg, observer)

		app.Draft = intelligence.NewDraftService(client)
		app.Rubric = intelligence.NewRubricService(client, cat)
		app.Suggest = intelligence.NewSuggestService(client, cat)
		app.Chat = intelligence.NewChatService(client)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

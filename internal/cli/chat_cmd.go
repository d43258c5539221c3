package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [QUESTION]",
		Short: "Chat with the curriculum planning assistant",
		Long: "Open a multi-turn conversation with the planning assistant. " +
			"With a question argument, or on a non-interactive terminal, a " +
			"single streamed answer is printed instead.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Chat == nil {
				return llmDisabledErr()
			}

			if len(args) > 0 || app.IsInteractive == nil || !app.IsInteractive() {
				return runChatOnce(app, strings.Join(args, " "))
			}

			model := newChatModel(app)
			p := tea.NewProgram(model)
			model.program = p
			_, err := p.Run()
			return err
		},
	}
}

// runChatOnce answers a single question, streaming the reply to stdout
// as it arrives. Used for piped input and one-shot questions.
func runChatOnce(app *App, question string) error {
	if question == "" {
		// Read the question from stdin (piped usage).
		scanner := bufio.NewScanner(os.Stdin)
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return err
		}
		question = strings.TrimSpace(strings.Join(lines, "\n"))
	}
	if question == "" {
		return fmt.Errorf("nothing to ask")
	}

	_, err := app.Chat.Send(context.Background(), nil, question, func(chunk string) {
		fmt.Print(chunk)
	})
	if err != nil {
		return err
	}
	fmt.Println()
	return nil
}

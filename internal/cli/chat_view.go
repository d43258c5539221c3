package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mvilaseca/eduplan/internal/cli/formatter"
	"github.com/mvilaseca/eduplan/internal/intelligence"
)

// chatChunkMsg carries one streamed text fragment of the pending reply.
type chatChunkMsg struct{ text string }

// chatDoneMsg signals the end of a streamed reply.
type chatDoneMsg struct {
	full string
	err  error
}

// chatModel is the interactive multi-turn chat view. Streaming chunks
// are pumped into the update loop through program.Send from the worker
// goroutine, so the reply renders as it arrives.
type chatModel struct {
	app     *App
	program *tea.Program
	input   textinput.Model

	history  []intelligence.ChatTurn
	messages []string
	pending  string
	waiting  bool
}

func newChatModel(app *App) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	return &chatModel{
		app:   app,
		input: ti,
		messages: []string{
			formatter.Header("Planning assistant"),
			formatter.Dim("Ask about activities, competencies or evaluation. Esc to leave."),
			"",
		},
	}
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			input := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if input == "" {
				return m, nil
			}
			return m.ask(input)
		}

	case chatChunkMsg:
		m.pending += msg.text
		return m, nil

	case chatDoneMsg:
		m.waiting = false
		if msg.err != nil {
			m.messages = append(m.messages, formatter.StyleRed.Render("Error: ")+msg.err.Error())
			m.pending = ""
			return m, nil
		}
		m.messages = append(m.messages, formatter.StyleGreen.Render("Assistant: ")+msg.full, "")
		m.history = append(m.history, intelligence.ChatTurn{Role: "assistant", Content: msg.full})
		m.pending = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) View() string {
	var b strings.Builder

	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	if m.waiting {
		b.WriteString(formatter.StyleGreen.Render("Assistant: "))
		b.WriteString(m.pending)
		b.WriteString(formatter.Dim("▌"))
		b.WriteString("\n")
		return b.String()
	}

	prompt := formatter.StylePurple.Render("chat") + formatter.Dim("> ")
	b.WriteString(prompt)
	b.WriteString(m.input.View())

	return b.String()
}

func (m *chatModel) ask(input string) (tea.Model, tea.Cmd) {
	m.messages = append(m.messages, formatter.Dim("You: ")+input)
	history := append([]intelligence.ChatTurn(nil), m.history...)
	m.history = append(m.history, intelligence.ChatTurn{Role: "user", Content: input})
	m.waiting = true
	m.pending = ""

	program := m.program
	chat := m.app.Chat

	go func() {
		full, err := chat.Send(context.Background(), history, input, func(chunk string) {
			program.Send(chatChunkMsg{text: chunk})
		})
		program.Send(chatDoneMsg{full: full, err: err})
	}()

	return m, nil
}

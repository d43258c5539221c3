package intelligence

import (
	"context"
	"fmt"

	"github.com/mvilaseca/eduplan/internal/llm"
)

// ChatTurn records one exchange of the planning conversation. Role is
// "user" or "assistant".
type ChatTurn struct {
	Role    string
	Content string
}

// ChatService runs the streaming planning-assistant conversation.
type ChatService interface {
	// Send streams the assistant's reply to message given the prior
	// history, invoking onChunk per text fragment, and returns the full
	// reply once the stream completes.
	Send(ctx context.Context, history []ChatTurn, message string, onChunk func(string)) (string, error)
}

type chatService struct {
	client llm.Client
}

// NewChatService creates a ChatService backed by an LLM client.
func NewChatService(client llm.Client) ChatService {
	return &chatService{client: client}
}

func (s *chatService) Send(ctx context.Context, history []ChatTurn, message string, onChunk func(string)) (string, error) {
	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: chatSystemPrompt})
	for _, turn := range history {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: "user", Content: message})

	resp, err := s.client.Chat(ctx, llm.ChatRequest{
		Task:     llm.TaskChat,
		Messages: messages,
	}, onChunk)
	if err != nil {
		return "", fmt.Errorf("chat turn failed: %w", err)
	}
	return resp.Text, nil
}

package intelligence

import (
	"context"
	"strings"

	"github.com/mvilaseca/eduplan/internal/llm"
)

// stubClient is a canned-response llm.Client for service tests.
type stubClient struct {
	generateText string
	generateErr  error
	lastGenerate llm.GenerateRequest

	chatChunks []string
	chatErr    error
	lastChat   llm.ChatRequest
}

func (s *stubClient) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	s.lastGenerate = req
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	return &llm.GenerateResponse{Text: s.generateText, Model: "stub"}, nil
}

func (s *stubClient) Chat(ctx context.Context, req llm.ChatRequest, onChunk func(string)) (*llm.GenerateResponse, error) {
	s.lastChat = req
	if s.chatErr != nil {
		return nil, s.chatErr
	}
	for _, chunk := range s.chatChunks {
		if onChunk != nil {
			onChunk(chunk)
		}
	}
	return &llm.GenerateResponse{Text: strings.Join(s.chatChunks, ""), Model: "stub"}, nil
}

func (s *stubClient) Available(ctx context.Context) bool { return true }

package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Message is one turn of a chat conversation. Role is "system",
// "user" or "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest holds the parameters for a streaming chat call.
type ChatRequest struct {
	Task     TaskType
	Messages []Message
}

// Client provides access to a language model.
type Client interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Chat sends a conversation and streams the reply, invoking onChunk
	// for each text fragment as it arrives. It returns the accumulated
	// reply once the stream completes.
	Chat(ctx context.Context, req ChatRequest, onChunk func(string)) (*GenerateResponse, error)

	// Available checks whether the Ollama server is reachable.
	Available(ctx context.Context) bool
}

// ollamaClient implements Client using the Ollama HTTP API.
type ollamaClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewOllamaClient creates a Client that talks to a local Ollama instance.
func NewOllamaClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &ollamaClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// generateBody is the JSON body sent to POST /api/generate.
type generateBody struct {
	Model   string        `json:"model"`
	System  string        `json:"system,omitempty"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options,omitempty"`
}

// chatBody is the JSON body sent to POST /api/chat.
type chatBody struct {
	Model    string        `json:"model"`
	Messages []Message     `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// generateResponse is the JSON body returned by POST /api/generate
// (non-streaming).
type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

// chatChunk is one NDJSON line of a streaming /api/chat response.
type chatChunk struct {
	Model   string  `json:"model"`
	Message Message `json:"message"`
	Done    bool    `json:"done"`
}

func (c *ollamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	body := generateBody{
		Model:  c.cfg.Model,
		System: req.SystemPrompt,
		Prompt: req.UserPrompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: temp,
			NumPredict:  maxTok,
		},
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		resp, err := c.doGenerate(ctx, body)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(CallEvent{
				Task:      req.Task,
				Model:     c.cfg.Model,
				LatencyMs: latency,
				Success:   true,
			})
			return &GenerateResponse{
				Text:      resp.Response,
				Model:     resp.Model,
				LatencyMs: latency,
			}, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout
		if ctx.Err() != nil {
			break
		}
	}

	return nil, c.failure(req.Task, start, ctx, lastErr)
}

func (c *ollamaClient) doGenerate(ctx context.Context, body generateBody) (*generateResponse, error) {
	httpResp, err := c.post(ctx, "/api/generate", body)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp generateResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &resp, nil
}

// Chat streams an Ollama chat completion. The stream is NDJSON: one
// chunk per line, the final line carrying done=true. Streaming calls
// are not retried; a broken stream surfaces to the caller with the
// partial text already delivered through onChunk.
func (c *ollamaClient) Chat(ctx context.Context, req ChatRequest, onChunk func(string)) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := c.cfg.Tasks[req.Task]
	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	body := chatBody{
		Model:    c.cfg.Model,
		Messages: req.Messages,
		Stream:   true,
		Options: ollamaOptions{
			Temperature: taskCfg.Temperature,
			NumPredict:  taskCfg.MaxTokens,
		},
	}

	httpResp, err := c.post(ctx, "/api/chat", body)
	if err != nil {
		return nil, c.failure(req.Task, start, ctx, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(httpResp.Body)
		err := fmt.Errorf("ollama returned status %d: %s", httpResp.StatusCode, string(respBody))
		return nil, c.failure(req.Task, start, ctx, err)
	}

	var full bytes.Buffer
	model := c.cfg.Model

	scanner := bufio.NewScanner(httpResp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var chunk chatChunk
		if err := json.Unmarshal(line, &chunk); err != nil {
			return nil, c.failure(req.Task, start, ctx, fmt.Errorf("decoding stream chunk: %w", err))
		}
		if chunk.Model != "" {
			model = chunk.Model
		}
		if chunk.Message.Content != "" {
			full.WriteString(chunk.Message.Content)
			if onChunk != nil {
				onChunk(chunk.Message.Content)
			}
		}
		if chunk.Done {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, c.failure(req.Task, start, ctx, fmt.Errorf("reading stream: %w", err))
	}

	latency := time.Since(start).Milliseconds()
	c.observer.OnCallComplete(CallEvent{
		Task:      req.Task,
		Model:     model,
		LatencyMs: latency,
		Success:   true,
	})

	return &GenerateResponse{
		Text:      full.String(),
		Model:     model,
		LatencyMs: latency,
	}, nil
}

func (c *ollamaClient) post(ctx context.Context, path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return c.http.Do(httpReq)
}

// failure records the observer event and maps the raw error onto the
// package sentinels.
func (c *ollamaClient) failure(task TaskType, start time.Time, ctx context.Context, err error) error {
	latency := time.Since(start).Milliseconds()
	c.observer.OnCallComplete(CallEvent{
		Task:      task,
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Success:   false,
		ErrorCode: errorCode(err),
	})

	if ctx.Err() != nil {
		return ErrTimeout
	}
	if isConnectionError(err) {
		return ErrOllamaUnavailable
	}
	return fmt.Errorf("%w: %v", ErrRetryExhausted, err)
}

func (c *ollamaClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/api/tags", nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrOllamaUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}

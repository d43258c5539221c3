package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	return cfg
}

func TestOllamaClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req generateBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3.2", req.Model)
		assert.False(t, req.Stream)
		assert.Equal(t, "user prompt", req.Prompt)

		resp := generateResponse{Model: "llama3.2", Response: "Objectiu didàctic..."}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskDescribe,
		UserPrompt: "user prompt",
	})

	require.NoError(t, err)
	assert.Equal(t, "Objectiu didàctic...", resp.Text)
	assert.Equal(t, "llama3.2", resp.Model)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestOllamaClient_Generate_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(generateResponse{Model: "llama3.2", Response: "ok"})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1
	client := NewOllamaClient(cfg, NoopObserver{})

	resp, err := client.Generate(context.Background(), GenerateRequest{Task: TaskDescribe, UserPrompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, int64(2), calls.Load())
}

func TestOllamaClient_Generate_RetryExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskDescribe, UserPrompt: "p"})
	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestOllamaClient_Generate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		json.NewEncoder(w).Encode(generateResponse{Response: "massa tard"})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Tasks[TaskDescribe] = TaskConfig{Temperature: 0.4, MaxTokens: 64, TimeoutMs: 50}
	client := NewOllamaClient(cfg, NoopObserver{})

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskDescribe, UserPrompt: "p"})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestOllamaClient_Chat_StreamsChunks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)

		var req chatBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Stream)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)

		w.Header().Set("Content-Type", "application/x-ndjson")
		chunks := []chatChunk{
			{Model: "llama3.2", Message: Message{Role: "assistant", Content: "Bon "}},
			{Model: "llama3.2", Message: Message{Role: "assistant", Content: "dia!"}},
			{Model: "llama3.2", Done: true},
		}
		enc := json.NewEncoder(w)
		for _, c := range chunks {
			require.NoError(t, enc.Encode(c))
		}
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), NoopObserver{})

	var got []string
	resp, err := client.Chat(context.Background(), ChatRequest{
		Task: TaskChat,
		Messages: []Message{
			{Role: "system", Content: "ets un assistent"},
			{Role: "user", Content: "hola"},
		},
	}, func(chunk string) {
		got = append(got, chunk)
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Bon ", "dia!"}, got)
	assert.Equal(t, "Bon dia!", resp.Text)
	assert.Equal(t, "llama3.2", resp.Model)
}

func TestOllamaClient_Chat_BrokenStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"message":{"role":"assistant","content":"inici"},"done":false}`)
		fmt.Fprintln(w, `{malformed`)
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Chat(context.Background(), ChatRequest{
		Task:     TaskChat,
		Messages: []Message{{Role: "user", Content: "hola"}},
	}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestOllamaClient_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), NoopObserver{})
	assert.True(t, client.Available(context.Background()))

	srv.Close()
	assert.False(t, client.Available(context.Background()))
}

func TestLogObserver_Format(t *testing.T) {
	var sb strings.Builder
	o := NewLogObserver(&sb)

	o.OnCallComplete(CallEvent{Task: TaskSuggest, Model: "llama3.2", LatencyMs: 42, Success: true})
	o.OnCallComplete(CallEvent{Task: TaskChat, Model: "llama3.2", LatencyMs: 7, Success: false, ErrorCode: "TIMEOUT"})

	out := sb.String()
	assert.Contains(t, out, "llm_call task=suggest model=llama3.2 latency_ms=42 status=ok")
	assert.Contains(t, out, "status=err:TIMEOUT")
}

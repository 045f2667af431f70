// Package commentary fetches short flavor text from a remote
// text-generation HTTP API. Requests are fire-and-forget: the frame loop
// never waits on one, and any failure degrades to a fixed fallback line.
package commentary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Client talks to the text-generation HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// generateRequest is the request body for the generation endpoint.
type generateRequest struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"maxTokens"`
}

// generateResponse is the response from the generation endpoint.
type generateResponse struct {
	Text  string  `json:"text"`
	Error *string `json:"error,omitempty"`
}

// NewClient creates a client for the given deployment URL. The API key may
// be empty; the server then rejects requests and callers fall back.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Generate requests one line of text for the prompt.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	jsonData, err := json.Marshal(generateRequest{Prompt: prompt, MaxTokens: 60})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/generate", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generation API error (status %d): %s", resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if genResp.Error != nil {
		return "", fmt.Errorf("generation failed: %s", *genResp.Error)
	}

	text := strings.TrimSpace(genResp.Text)
	if text == "" {
		return "", fmt.Errorf("generation returned empty text")
	}
	return text, nil
}

// Gateway owns the displayed commentary line. Each game phase instance
// resets it, and a generation counter drops results that finish after a
// reset, so a stale game-over line never shows up in the next run.
type Gateway struct {
	client    *Client
	prompts   map[string]string
	fallbacks map[string]string
	timeout   time.Duration
	log       zerolog.Logger

	mu   sync.Mutex
	gen  uint64
	text string
}

// NewGateway builds a gateway. client may be nil; every request then
// resolves to the event's fallback line immediately. Prompt templates may
// contain one %d, substituted with the score.
func NewGateway(client *Client, prompts, fallbacks map[string]string, log zerolog.Logger) *Gateway {
	return &Gateway{
		client:    client,
		prompts:   prompts,
		fallbacks: fallbacks,
		timeout:   10 * time.Second,
		log:       log,
	}
}

// Request issues an asynchronous generation for the event tag. It returns
// immediately; the result (or the fallback) becomes visible through Text.
func (g *Gateway) Request(event string, score int) {
	fallback := g.fallbacks[event]

	g.mu.Lock()
	gen := g.gen
	g.mu.Unlock()

	if g.client == nil {
		g.deliver(gen, fallback)
		return
	}

	prompt := g.prompts[event]
	if strings.Contains(prompt, "%d") {
		prompt = fmt.Sprintf(prompt, score)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
		defer cancel()

		line, err := g.client.Generate(ctx, prompt)
		if err != nil {
			g.log.Debug().Err(err).Str("event", event).Msg("commentary generation failed, using fallback")
			line = fallback
		}
		g.deliver(gen, line)
	}()
}

// deliver publishes a result unless a Reset happened since the request.
func (g *Gateway) deliver(gen uint64, line string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if gen != g.gen {
		return
	}
	g.text = line
}

// Text returns the current display line.
func (g *Gateway) Text() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.text
}

// Reset clears the line and invalidates outstanding requests.
func (g *Gateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
	g.text = ""
}

// internal/adapter/llm/client.go

package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"clipforge/internal/config"
	"clipforge/internal/domain/content"
	"clipforge/internal/httpx"
)

// Client calls an OpenAI-compatible chat completions API. The base URL is
// configurable so any compatible provider works.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
	http        *httpx.Client
	logger      *zap.Logger
}

// New creates a chat completions client from config.
func New(cfg config.OpenAIConfig, httpClient *httpx.Client, logger *zap.Logger) *Client {
	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		http:        httpClient,
		logger:      logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a system+user prompt pair and returns the model's reply
// text.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	messages := make([]chatMessage, 0, 2)
	if system != "" {
		messages = append(messages, chatMessage{Role: "system", Content: system})
	}
	messages = append(messages, chatMessage{Role: "user", Content: user})

	var resp chatResponse
	err := c.http.Do(ctx, httpx.Request{
		Method: http.MethodPost,
		URL:    c.baseURL + "/chat/completions",
		Header: http.Header{"Authorization": {"Bearer " + c.apiKey}},
		Body: chatRequest{
			Model:       c.model,
			Messages:    messages,
			Temperature: c.temperature,
			MaxTokens:   c.maxTokens,
		},
		Out: &resp,
	})
	if err != nil {
		return "", content.NewUpstreamError("text generation", err)
	}

	if len(resp.Choices) == 0 {
		return "", content.NewUpstreamError("text generation", fmt.Errorf("empty completion response"))
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	c.logger.Debug("completion received",
		zap.String("model", c.model),
		zap.Int("chars", len(text)))

	return text, nil
}

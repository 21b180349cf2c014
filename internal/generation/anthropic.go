package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com"
	defaultAnthropicVersion = "2023-06-01"
	defaultAnthropicModel   = "claude-sonnet-4-20250514"
	defaultMaxTokens        = 4096
	maxResponseBytes        = 4 << 20
)

// AnthropicConfig configures direct access to the Anthropic Messages API.
type AnthropicConfig struct {
	APIKey    string
	Model     string
	BaseURL   string
	Version   string
	MaxTokens int
}

// Anthropic calls the Messages API and returns the first text block of the reply.
type Anthropic struct {
	cfg    AnthropicConfig
	client *http.Client
}

// NewAnthropic validates cfg and fills defaults.
func NewAnthropic(cfg AnthropicConfig, client *http.Client) (*Anthropic, error) {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return nil, errors.New("generation: anthropic api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = defaultAnthropicModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultAnthropicBaseURL
	}
	if cfg.Version == "" {
		cfg.Version = defaultAnthropicVersion
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Anthropic{cfg: cfg, client: client}, nil
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

func (a *Anthropic) Generate(ctx context.Context, prompt string, opts ...CallOption) (string, error) {
	call := resolveCallOptions(a.cfg.MaxTokens, opts)

	body, err := json.Marshal(anthropicRequest{
		Model:     a.cfg.Model,
		MaxTokens: call.maxTokens,
		Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: encode request: %w", err)
	}

	endpoint := strings.TrimRight(a.cfg.BaseURL, "/") + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("anthropic: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.cfg.APIKey)
	req.Header.Set("anthropic-version", a.cfg.Version)

	payload, status, err := doRequest(a.client, req)
	if err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}
	if status >= http.StatusBadRequest {
		message := gjson.GetBytes(payload, "error.message").String()
		if message == "" {
			message = http.StatusText(status)
		}
		return "", fmt.Errorf("anthropic: status %d: %s", status, message)
	}

	var text strings.Builder
	for _, block := range gjson.GetBytes(payload, "content").Array() {
		if block.Get("type").String() == "text" {
			text.WriteString(block.Get("text").String())
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", fmt.Errorf("anthropic: %w", ErrEmptyResponse)
	}
	return text.String(), nil
}

func (a *Anthropic) Name() string { return ProviderAnthropic }

func doRequest(client *http.Client, req *http.Request) ([]byte, int, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	return payload, resp.StatusCode, nil
}

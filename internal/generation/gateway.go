package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// GatewayConfig points at an intermediary that holds the model credentials.
type GatewayConfig struct {
	URL       string
	Token     string
	MaxTokens int
}

// Gateway posts prompts to a key broker and reads {"text": "..."} back.
type Gateway struct {
	cfg    GatewayConfig
	client *http.Client
}

// NewGateway validates cfg.
func NewGateway(cfg GatewayConfig, client *http.Client) (*Gateway, error) {
	cfg.URL = strings.TrimSpace(cfg.URL)
	if cfg.URL == "" {
		return nil, errors.New("generation: gateway url is required")
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Gateway{cfg: cfg, client: client}, nil
}

type gatewayRequest struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens,omitempty"`
	Kind      string `json:"kind,omitempty"`
}

func (g *Gateway) Generate(ctx context.Context, prompt string, opts ...CallOption) (string, error) {
	call := resolveCallOptions(g.cfg.MaxTokens, opts)

	body, err := json.Marshal(gatewayRequest{Prompt: prompt, MaxTokens: call.maxTokens, Kind: call.kind})
	if err != nil {
		return "", fmt.Errorf("gateway: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+g.cfg.Token)
	}

	payload, status, err := doRequest(g.client, req)
	if err != nil {
		return "", fmt.Errorf("gateway: %w", err)
	}
	if status >= http.StatusBadRequest {
		message := gjson.GetBytes(payload, "error").String()
		if message == "" {
			message = http.StatusText(status)
		}
		return "", fmt.Errorf("gateway: status %d: %s", status, message)
	}

	text := gjson.GetBytes(payload, "text")
	if !text.Exists() || strings.TrimSpace(text.String()) == "" {
		return "", fmt.Errorf("gateway: %w", ErrEmptyResponse)
	}
	return text.String(), nil
}

func (g *Gateway) Name() string { return ProviderGateway }

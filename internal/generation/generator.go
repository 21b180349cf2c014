package generation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Provider names accepted by New.
const (
	ProviderAuto      = "auto"
	ProviderAnthropic = "anthropic"
	ProviderGateway   = "gateway"
	ProviderStatic    = "static"
)

var (
	// ErrGenerationDisabled is returned by the static provider.
	ErrGenerationDisabled = errors.New("generation: disabled")
	// ErrEmptyResponse reports a provider reply without any text.
	ErrEmptyResponse = errors.New("generation: empty response")
)

// Generator produces text for a prompt. Implementations honour ctx cancellation
// and deadlines; callers own the timeout.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts ...CallOption) (string, error)
	Name() string
}

// CallOption tunes a single Generate call.
type CallOption func(*callOptions)

type callOptions struct {
	maxTokens int
	kind      string
}

// WithMaxTokens caps the reply length for one call.
func WithMaxTokens(n int) CallOption {
	return func(o *callOptions) {
		if n > 0 {
			o.maxTokens = n
		}
	}
}

// WithKind labels the call for metrics and logs (dashboard, devotional, ...).
func WithKind(kind string) CallOption {
	return func(o *callOptions) {
		o.kind = kind
	}
}

func resolveCallOptions(defaultMaxTokens int, opts []CallOption) callOptions {
	resolved := callOptions{maxTokens: defaultMaxTokens, kind: "generic"}
	for _, opt := range opts {
		if opt != nil {
			opt(&resolved)
		}
	}
	return resolved
}

// Config selects and configures a provider.
type Config struct {
	Provider  string
	Timeout   time.Duration
	MaxTokens int
	Anthropic AnthropicConfig
	Gateway   GatewayConfig
}

// Option customises provider construction.
type Option func(*factoryOptions)

type factoryOptions struct {
	httpClient *http.Client
}

// WithHTTPClient overrides the HTTP client used by network providers.
func WithHTTPClient(client *http.Client) Option {
	return func(o *factoryOptions) {
		o.httpClient = client
	}
}

// New builds the configured Generator. The auto provider picks anthropic when an
// API key is present, then gateway when a URL is present, and static otherwise.
func New(cfg Config, opts ...Option) (Generator, error) {
	options := factoryOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		// request contexts usually expire first; the client timeout is a backstop
		options.httpClient = &http.Client{Timeout: timeout + 5*time.Second}
	}

	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" || provider == ProviderAuto {
		switch {
		case strings.TrimSpace(cfg.Anthropic.APIKey) != "":
			provider = ProviderAnthropic
		case strings.TrimSpace(cfg.Gateway.URL) != "":
			provider = ProviderGateway
		default:
			provider = ProviderStatic
		}
	}

	switch provider {
	case ProviderAnthropic:
		if cfg.Anthropic.MaxTokens <= 0 {
			cfg.Anthropic.MaxTokens = cfg.MaxTokens
		}
		return NewAnthropic(cfg.Anthropic, options.httpClient)
	case ProviderGateway:
		if cfg.Gateway.MaxTokens <= 0 {
			cfg.Gateway.MaxTokens = cfg.MaxTokens
		}
		return NewGateway(cfg.Gateway, options.httpClient)
	case ProviderStatic:
		return Static{}, nil
	default:
		return nil, fmt.Errorf("generation: unknown provider %q", cfg.Provider)
	}
}

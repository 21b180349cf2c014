package generation

import "context"

// Static never reaches a model. Every call fails with ErrGenerationDisabled so
// callers serve their fallback content.
type Static struct{}

func (Static) Generate(ctx context.Context, prompt string, opts ...CallOption) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "", ErrGenerationDisabled
}

func (Static) Name() string { return ProviderStatic }

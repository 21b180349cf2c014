package generation

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/charlesng35/ayumi/pkg/logger"
	"github.com/charlesng35/ayumi/pkg/metrics"
)

type instrumented struct {
	next Generator
	log  *zap.Logger
}

// Instrument wraps g so every call is timed, counted and logged.
func Instrument(g Generator) Generator {
	if g == nil {
		return nil
	}
	if _, ok := g.(*instrumented); ok {
		return g
	}
	return &instrumented{next: g, log: logger.WithModule("generation")}
}

func (i *instrumented) Generate(ctx context.Context, prompt string, opts ...CallOption) (string, error) {
	call := resolveCallOptions(0, opts)
	provider := i.next.Name()

	started := time.Now()
	text, err := i.next.Generate(ctx, prompt, opts...)
	elapsed := time.Since(started)

	metrics.GenerationDuration.WithLabelValues(call.kind, provider).Observe(elapsed.Seconds())
	if err != nil {
		metrics.GenerationResults.WithLabelValues(call.kind, provider, "failure").Inc()
		i.log.Debug("generation failed",
			zap.String("kind", call.kind),
			zap.String("provider", provider),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return "", err
	}

	metrics.GenerationResults.WithLabelValues(call.kind, provider, "success").Inc()
	i.log.Debug("generation completed",
		zap.String("kind", call.kind),
		zap.String("provider", provider),
		zap.Duration("elapsed", elapsed),
		zap.Int("chars", len(text)),
	)
	return text, nil
}

func (i *instrumented) Name() string { return i.next.Name() }

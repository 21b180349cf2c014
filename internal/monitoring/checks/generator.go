package checks

import (
	"context"

	"github.com/charlesng35/ayumi/internal/generation"
	"github.com/charlesng35/ayumi/internal/monitoring"
)

// Generator reports which text generation provider is active. The static
// provider degrades readiness since every generated endpoint serves fallback
// content. The probe never calls the provider.
func Generator(gen generation.Generator) monitoring.Check {
	return monitoring.NewCheck("generator", func(context.Context) monitoring.ProbeResult {
		if gen == nil {
			return monitoring.ProbeResult{Status: monitoring.StatusDown, Details: "generator not configured"}
		}
		name := gen.Name()
		if name == generation.ProviderStatic {
			return monitoring.ProbeResult{Status: monitoring.StatusDegraded, Details: "generation disabled, serving fallback content"}
		}
		return monitoring.ProbeResult{Status: monitoring.StatusUp, Details: "provider " + name}
	})
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/charlesng35/ayumi/internal/generation"
)

// Source tells callers whether a generated value came from the model or from
// the built-in fallback.
type Source string

const (
	SourceGenerated Source = "generated"
	SourceFallback  Source = "fallback"
)

const defaultGenerationTimeout = 60 * time.Second

const (
	pgUniqueViolation   = "23505"
	mysqlDuplicateEntry = 1062
)

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

// generateJSON runs prompt through gen and decodes the JSON document in the
// reply into out.
func generateJSON(ctx context.Context, gen generation.Generator, timeout time.Duration, prompt string, out any, opts ...generation.CallOption) error {
	text, err := generateText(ctx, gen, timeout, prompt, opts...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(generation.ExtractJSON(text)), out); err != nil {
		return fmt.Errorf("decode reply: %w", err)
	}
	return nil
}

func generateText(ctx context.Context, gen generation.Generator, timeout time.Duration, prompt string, opts ...generation.CallOption) (string, error) {
	if gen == nil {
		return "", generation.ErrGenerationDisabled
	}
	if timeout <= 0 {
		timeout = defaultGenerationTimeout
	}
	callCtx, cancel := context.WithTimeout(ensureContext(ctx), timeout)
	defer cancel()

	text, err := gen.Generate(callCtx, prompt, opts...)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", generation.ErrEmptyResponse
	}
	return text, nil
}

func trimmedStrings(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}
	return out
}

// isUniqueConstraintError reports whether err came from a unique index on any
// of the supported drivers.
func isUniqueConstraintError(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return true
	}

	if pgErr := (*pgconn.PgError)(nil); errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	if myErr := (*mysql.MySQLError)(nil); errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	// sqlite: "UNIQUE constraint failed: user_settings.user_id"
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

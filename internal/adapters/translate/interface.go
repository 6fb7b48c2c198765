package translate

import (
	"context"

	"go.uber.org/zap"

	"github.com/crypsidex/digest-bot/pkg/logger"
)

// Backend translates text between two languages or fails
type Backend interface {
	// Name returns backend name for logging
	Name() string

	// Translate returns the translated text; an empty result is an error
	Translate(ctx context.Context, text, from, to string) (string, error)
}

// Chain tries backends in priority order and falls back to the original
// text when every backend fails. Translation never fails the pipeline.
type Chain struct {
	backends []Backend
	from     string
	to       string
}

// NewChain creates new translation chain
func NewChain(from, to string, backends ...Backend) *Chain {
	return &Chain{
		backends: backends,
		from:     from,
		to:       to,
	}
}

// Translate maps text to the target language. On total backend failure the
// original text is returned unchanged.
func (c *Chain) Translate(ctx context.Context, text string) string {
	if text == "" {
		return text
	}

	for _, b := range c.backends {
		translated, err := b.Translate(ctx, text, c.from, c.to)
		if err != nil {
			logger.Debug("translation backend failed",
				zap.String("backend", b.Name()),
				zap.Error(err),
			)
			continue
		}
		return translated
	}

	return text
}

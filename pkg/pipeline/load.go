package pipeline

import (
	"context"

	"github.com/matzehuels/vitrine/pkg/cache"
	"github.com/matzehuels/vitrine/pkg/content"
	"github.com/matzehuels/vitrine/pkg/content/source"
	"github.com/matzehuels/vitrine/pkg/errors"
)

// Load resolves the content model from the configured source.
func Load(ctx context.Context, opts Options) (*content.Model, error) {
	src, err := source.New(opts.Source)
	if err != nil {
		return nil, err
	}
	return loadFrom(ctx, src)
}

// loadFrom loads the model from a constructed source. Remote sources retry
// transient failures with backoff; content and validation errors fail fast.
func loadFrom(ctx context.Context, src source.Source) (*content.Model, error) {
	if !source.Remote(src) {
		return src.Load(ctx)
	}

	var m *content.Model
	err := cache.RetryWithBackoff(ctx, func() error {
		var loadErr error
		m, loadErr = src.Load(ctx)
		if loadErr != nil && errors.GetCode(loadErr) == errors.ErrCodeSourceUnavailable {
			return cache.Retryable(loadErr)
		}
		return loadErr
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

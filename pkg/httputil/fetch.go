package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/matzehuels/vitrine/pkg/cache"
)

// FetchAsset downloads one remote page asset (hero image, icon stylesheet).
// Network errors, 5xx responses, and 429 responses are retried with
// backoff via [cache.RetryWithBackoff]; any other non-200 status fails
// immediately.
func FetchAsset(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}

	var data []byte
	err := cache.RetryWithBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		resp, err := client.Do(req)
		if err != nil {
			return cache.Retryable(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return cache.Retryable(fmt.Errorf("fetch %s: status %d", url, resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
		}

		data, err = io.ReadAll(resp.Body)
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

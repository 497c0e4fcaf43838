package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/nsavkin/paperdesk/internal/client/models"
)

// AccountPreferences fetches the account-level personalization layer.
func (c *HTTPClient) AccountPreferences(ctx context.Context) (*models.SettingsPatch, error) {
	var patch models.SettingsPatch
	if err := c.doJSON(ctx, http.MethodGet, "/users/preferences", nil, &patch); err != nil {
		return nil, err
	}
	return &patch, nil
}

// SaveAccountPreferences stores the account-level personalization layer.
func (c *HTTPClient) SaveAccountPreferences(ctx context.Context, patch models.SettingsPatch) error {
	return c.doJSON(ctx, http.MethodPut, "/users/preferences", patch, nil)
}

// Download fetches the raw bytes behind an attachment download ref. Refs
// may be absolute URLs or paths relative to the API base.
func (c *HTTPClient) Download(ctx context.Context, ref string) ([]byte, error) {
	target := ref
	if len(ref) > 0 && ref[0] == '/' {
		target = c.baseURL + ref
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if tokenUsable(c.token) {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}

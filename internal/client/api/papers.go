package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/nsavkin/paperdesk/internal/client/models"
)

// ListPapers returns the caller's papers.
func (c *HTTPClient) ListPapers(ctx context.Context) ([]models.Paper, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, "/papers", nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[models.Paper](raw, "papers")
}

// GetPaper fetches a single paper record.
func (c *HTTPClient) GetPaper(ctx context.Context, id string) (*models.Paper, error) {
	var paper models.Paper
	if err := c.doJSON(ctx, http.MethodGet, "/papers/"+url.PathEscape(id), nil, &paper); err != nil {
		return nil, err
	}
	return &paper, nil
}

// PaperSettings fetches the per-paper personalization layer. A paper with
// no saved layer yields ErrNotFound; callers treat that as an absent layer.
func (c *HTTPClient) PaperSettings(ctx context.Context, paperID string) (*models.SettingsPatch, error) {
	var patch models.SettingsPatch
	path := "/papers/" + url.PathEscape(paperID) + "/ai-settings"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &patch); err != nil {
		return nil, err
	}
	return &patch, nil
}

// SavePaperSettings stores the per-paper personalization layer.
func (c *HTTPClient) SavePaperSettings(ctx context.Context, paperID string, patch models.SettingsPatch) error {
	path := "/papers/" + url.PathEscape(paperID) + "/ai-settings"
	return c.doJSON(ctx, http.MethodPut, path, patch, nil)
}

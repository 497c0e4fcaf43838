// Package api implements the HTTP client for the PaperDesk backend REST
// surface: chat, history, feedback, section merge, papers and the two
// persisted personalization layers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nsavkin/paperdesk/internal/client/models"
	"github.com/nsavkin/paperdesk/internal/logging"
)

// Client is the backend surface the session core depends on. Tests swap in
// struct fakes.
type Client interface {
	SendChat(ctx context.Context, send ChatSend) (ChatReply, error)
	History(ctx context.Context, paperID string) ([]HistoryTurn, error)
	SendFeedback(ctx context.Context, messageID string, helpful bool) error
	AddToSection(ctx context.Context, add SectionAdd) (int, error)

	ListPapers(ctx context.Context) ([]models.Paper, error)
	GetPaper(ctx context.Context, id string) (*models.Paper, error)

	PaperSettings(ctx context.Context, paperID string) (*models.SettingsPatch, error)
	SavePaperSettings(ctx context.Context, paperID string, patch models.SettingsPatch) error
	AccountPreferences(ctx context.Context) (*models.SettingsPatch, error)
	SaveAccountPreferences(ctx context.Context, patch models.SettingsPatch) error

	Download(ctx context.Context, ref string) ([]byte, error)

	SetToken(token string)
	HasToken() bool
}

type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        logging.Logger
}

var _ Client = (*HTTPClient)(nil)

func New(baseURL, token string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// doJSON marshals body (when non-nil), performs the request and decodes the
// response into out (when non-nil).
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

// do attaches the bearer token, executes the request and maps the outcome
// onto the package error taxonomy.
func (c *HTTPClient) do(req *http.Request, out any) error {
	if tokenUsable(c.token) {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Detail: serverDetail(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// serverDetail pulls a human-readable message out of an error body. The
// backend has used several envelope shapes over time.
func serverDetail(data []byte) string {
	var envelope struct {
		Error   string `json:"error"`
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return ""
	}
	for _, s := range []string{envelope.Error, envelope.Detail, envelope.Message} {
		if s != "" {
			return s
		}
	}
	return ""
}

// decodeList decodes either {"<key>": [...]} or a bare JSON array. Older
// backend versions returned the bare form.
func decodeList[T any](data []byte, key string) ([]T, error) {
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err == nil {
		if raw, ok := wrapper[key]; ok {
			var items []T
			if err := json.Unmarshal(raw, &items); err != nil {
				return nil, fmt.Errorf("decode %s: %w", key, err)
			}
			return items, nil
		}
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return items, nil
}

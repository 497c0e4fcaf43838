package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/nsavkin/paperdesk/internal/client/models"
)

// ChatSend is everything the transport needs to put one message on the
// wire. Paper is the already-trimmed context subset and may be nil.
type ChatSend struct {
	Content  string
	Model    models.Model
	Paper    *models.PaperContext
	Settings models.PersonalizationSettings
	Files    []models.StagedFile
}

// ChatReply is the decoded body of a chat endpoint response. Historic
// backend versions disagree on field names, so it stays a loose map until
// the reconciler extracts what it needs.
type ChatReply map[string]json.RawMessage

// chatRequest is one of the two wire encodings of a ChatSend. The encodings
// are not interchangeable: /chat/upload accepts only multipart and
// /chat/message only JSON.
type chatRequest interface {
	do(ctx context.Context, c *HTTPClient) (ChatReply, error)
}

// newChatRequest picks the encoding. The choice is a pure function of
// staged-file count, never of content length or model.
func newChatRequest(send ChatSend) chatRequest {
	if len(send.Files) > 0 {
		return multipartChatRequest{send: send}
	}
	return jsonChatRequest{send: send}
}

// SendChat dispatches one chat message, choosing JSON or multipart per the
// staged-file rule.
func (c *HTTPClient) SendChat(ctx context.Context, send ChatSend) (ChatReply, error) {
	return newChatRequest(send).do(ctx, c)
}

type jsonChatRequest struct {
	send ChatSend
}

func (r jsonChatRequest) do(ctx context.Context, c *HTTPClient) (ChatReply, error) {
	body := struct {
		Content  string                         `json:"content"`
		Model    models.Model                   `json:"model"`
		Paper    *models.PaperContext           `json:"paper_context"`
		Settings models.PersonalizationSettings `json:"personalization_settings"`
	}{
		Content:  r.send.Content,
		Model:    r.send.Model,
		Paper:    r.send.Paper,
		Settings: r.send.Settings,
	}

	var reply ChatReply
	if err := c.doJSON(ctx, http.MethodPost, "/chat/message", body, &reply); err != nil {
		return nil, err
	}
	return reply, nil
}

type multipartChatRequest struct {
	send ChatSend
}

func (r multipartChatRequest) do(ctx context.Context, c *HTTPClient) (ChatReply, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("content", r.send.Content); err != nil {
		return nil, fmt.Errorf("encode multipart: %w", err)
	}
	if err := w.WriteField("model", string(r.send.Model)); err != nil {
		return nil, fmt.Errorf("encode multipart: %w", err)
	}

	// Structured values ride as JSON-encoded string fields.
	settingsJSON, err := json.Marshal(r.send.Settings)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	if err := w.WriteField("personalization_settings", string(settingsJSON)); err != nil {
		return nil, fmt.Errorf("encode multipart: %w", err)
	}
	if r.send.Paper != nil {
		paperJSON, err := json.Marshal(r.send.Paper)
		if err != nil {
			return nil, fmt.Errorf("encode paper context: %w", err)
		}
		if err := w.WriteField("paper_context", string(paperJSON)); err != nil {
			return nil, fmt.Errorf("encode multipart: %w", err)
		}
	}

	for _, f := range r.send.Files {
		part, err := w.CreateFormFile("files", f.Name)
		if err != nil {
			return nil, fmt.Errorf("encode file %s: %w", f.Name, err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, fmt.Errorf("encode file %s: %w", f.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("encode multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var reply ChatReply
	if err := c.do(req, &reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// HistoryTurn is one prior conversation turn as the backend stores it.
type HistoryTurn struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// History fetches the prior turns for a paper scope; an empty paperID asks
// for the unscoped conversation.
func (c *HTTPClient) History(ctx context.Context, paperID string) ([]HistoryTurn, error) {
	path := "/chat/history"
	if paperID != "" {
		path += "?paper_id=" + url.QueryEscape(paperID)
	}

	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[HistoryTurn](raw, "messages")
}

// SendFeedback records the user's verdict on an assistant message.
func (c *HTTPClient) SendFeedback(ctx context.Context, messageID string, helpful bool) error {
	body := struct {
		MessageID string `json:"message_id"`
		Helpful   bool   `json:"helpful"`
	}{MessageID: messageID, Helpful: helpful}

	return c.doJSON(ctx, http.MethodPost, "/chat/feedback", body, nil)
}

// SectionAdd asks the backend to merge assistant content into a paper
// section.
type SectionAdd struct {
	MessageID string
	PaperID   string
	Section   models.Section
	Content   string
	Append    bool
}

// AddToSection performs the merge and returns the section's new total word
// count.
func (c *HTTPClient) AddToSection(ctx context.Context, add SectionAdd) (int, error) {
	body := struct {
		MessageID   string         `json:"message_id"`
		PaperID     string         `json:"paper_id"`
		SectionType models.Section `json:"section_type"`
		Content     string         `json:"content"`
		Append      bool           `json:"append"`
	}{
		MessageID:   add.MessageID,
		PaperID:     add.PaperID,
		SectionType: add.Section,
		Content:     add.Content,
		Append:      add.Append,
	}

	var out struct {
		WordCount int `json:"word_count"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/chat/add-to-section", body, &out); err != nil {
		return 0, err
	}
	return out.WordCount, nil
}

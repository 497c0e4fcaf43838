package services

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/nsavkin/paperdesk/internal/client/api"
	"github.com/nsavkin/paperdesk/internal/client/models"
)

// Candidate keys per logical field, in priority order. The backend has
// shipped more than one naming convention for these over time; keeping the
// fallback order in one visible list is what makes it testable.
var (
	replyIDKeys   = []string{"message_id", "id"}
	replyTextKeys = []string{"response", "content", "message"}
	replyTimeKeys = []string{"timestamp", "created_at"}
)

// confirmationKeys indicate, when explicitly false, that the reply needs no
// user verdict.
var confirmationKeys = []string{"requires_confirmation", "needs_confirmation"}

const placeholderReply = "(the assistant returned an empty reply)"

// Reconcile maps a raw transport reply into a session message. Missing
// fields fall back to a generated id, a placeholder text and the client
// clock, so schema drift on the backend never produces a broken turn.
func Reconcile(reply api.ChatReply, now time.Time) models.Message {
	msg := models.Message{
		Role:     models.RoleAssistant,
		CanMerge: true,
		Approval: models.ApprovalPending,
	}

	msg.ID = firstReplyString(reply, replyIDKeys)
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}

	msg.Content = firstReplyString(reply, replyTextKeys)
	if msg.Content == "" {
		msg.Content = placeholderReply
	}

	msg.Timestamp = firstReplyTime(reply, replyTimeKeys, now)

	for _, key := range confirmationKeys {
		if v, ok := replyBool(reply, key); ok && !v {
			msg.Approval = models.ApprovalNone
			break
		}
	}

	msg.Attachments = replyAttachments(reply)
	return msg
}

func firstReplyString(reply api.ChatReply, keys []string) string {
	for _, key := range keys {
		raw, ok := reply[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}

func firstReplyTime(reply api.ChatReply, keys []string, fallback time.Time) time.Time {
	for _, key := range keys {
		raw, ok := reply[key]
		if !ok {
			continue
		}

		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if ts, err := time.Parse(time.RFC3339, s); err == nil {
				return ts
			}
			continue
		}

		var n int64
		if err := json.Unmarshal(raw, &n); err == nil && n > 0 {
			// Heuristic: values this large are unix milliseconds.
			if n > 1_000_000_000_000 {
				return time.UnixMilli(n)
			}
			return time.Unix(n, 0)
		}
	}
	return fallback
}

func replyBool(reply api.ChatReply, key string) (bool, bool) {
	raw, ok := reply[key]
	if !ok {
		return false, false
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, false
	}
	return v, true
}

func replyAttachments(reply api.ChatReply) []models.Attachment {
	var raw json.RawMessage
	for _, key := range []string{"attachments", "files"} {
		if r, ok := reply[key]; ok {
			raw = r
			break
		}
	}
	if raw == nil {
		return nil
	}

	var items []struct {
		Name        string `json:"name"`
		Filename    string `json:"filename"`
		Size        int64  `json:"size"`
		SizeBytes   int64  `json:"size_bytes"`
		URL         string `json:"url"`
		DownloadURL string `json:"download_url"`
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	out := make([]models.Attachment, 0, len(items))
	for _, item := range items {
		name := item.Name
		if name == "" {
			name = item.Filename
		}
		if name == "" {
			continue
		}

		cat, ok := models.CategoryForName(name)
		if !ok {
			// Generated files with unknown extensions are treated as text;
			// a synthetic local file is produced on download.
			cat = models.MimeText
		}

		size := item.Size
		if size == 0 {
			size = item.SizeBytes
		}
		ref := item.URL
		if ref == "" {
			ref = item.DownloadURL
		}

		out = append(out, models.Attachment{
			Name:        name,
			Category:    cat,
			SizeBytes:   size,
			DownloadRef: ref,
		})
	}
	return out
}

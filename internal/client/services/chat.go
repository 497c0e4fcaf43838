package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nsavkin/paperdesk/internal/client/api"
	"github.com/nsavkin/paperdesk/internal/client/models"
	"github.com/nsavkin/paperdesk/internal/logging"
)

// Chat dispatches user messages to the assistant and reconciles replies
// into the session transcript.
type Chat struct {
	api      api.Client
	session  *Session
	resolver *SettingsResolver
	stager   *Stager
	log      logging.Logger
	nowFn    func() time.Time // test seam
}

func NewChat(apiClient api.Client, session *Session, resolver *SettingsResolver, stager *Stager, log logging.Logger) *Chat {
	return &Chat{
		api:      apiClient,
		session:  session,
		resolver: resolver,
		stager:   stager,
		log:      log,
		nowFn:    time.Now,
	}
}

// Send dispatches one message with whatever files are currently staged.
// An empty content with no staged files is a no-op, not an error. Only one
// send may be outstanding per session; a second attempt returns
// ErrSendInFlight instead of queueing.
//
// Transport-level failures do not escape: they are rendered as a synthetic
// assistant turn so the transcript stays a consistent append-only log.
// HTTP error statuses are returned for the caller to surface as a
// notification.
func (c *Chat) Send(ctx context.Context, content string, model models.Model, paper *models.Paper) (*models.Message, error) {
	content = strings.TrimSpace(content)
	files := c.stager.Pending()
	if content == "" && len(files) == 0 {
		return nil, nil
	}

	if err := c.session.BeginSend(); err != nil {
		return nil, err
	}
	defer c.session.EndSend()

	// Re-resolve immediately before the send: the per-paper layer may have
	// been edited since the last resolution.
	scope := ""
	if paper != nil {
		scope = paper.ID
	}
	settings := c.resolver.Resolve(ctx, scope)

	c.session.Append(c.userTurn(content, files))

	// Files are one-shot: once the attempt is dispatched they are not
	// retried, so a failed send cannot silently re-upload them.
	c.stager.Clear()

	reply, err := c.api.SendChat(ctx, api.ChatSend{
		Content:  content,
		Model:    model,
		Paper:    paper.Context(),
		Settings: settings,
		Files:    files,
	})
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			c.log.Warn(ctx, "chat send failed at transport level", "error", err)
			notice := c.connectivityNotice()
			c.session.Append(notice)
			return &notice, nil
		}
		return nil, fmt.Errorf("send message: %w", err)
	}

	msg := Reconcile(reply, c.nowFn())
	c.session.Append(msg)
	return &msg, nil
}

// userTurn builds the transcript entry for what the user just sent. A
// files-only send gets a stand-in content so the turn is visible.
func (c *Chat) userTurn(content string, files []models.StagedFile) models.Message {
	if content == "" {
		content = fmt.Sprintf("Uploaded %d file(s)", len(files))
	}

	attachments := make([]models.Attachment, 0, len(files))
	for _, f := range files {
		cat, _ := models.CategoryForName(f.Name)
		attachments = append(attachments, models.Attachment{
			Name:      f.Name,
			Category:  cat,
			SizeBytes: int64(len(f.Data)),
		})
	}

	return models.Message{
		ID:          uuid.NewString(),
		Role:        models.RoleUser,
		Content:     content,
		Timestamp:   c.nowFn(),
		Attachments: attachments,
	}
}

// connectivityNotice is the synthetic assistant turn inserted when the
// server cannot be reached. It is not mergeable and not actionable; retry
// is a user gesture, never automatic.
func (c *Chat) connectivityNotice() models.Message {
	return models.Message{
		ID:   uuid.NewString(),
		Role: models.RoleAssistant,
		Content: "I couldn't reach the PaperDesk server, so your message was not delivered. " +
			"Check your connection and send it again when you're ready.",
		Timestamp: c.nowFn(),
	}
}

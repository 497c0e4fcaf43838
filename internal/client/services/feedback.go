package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nsavkin/paperdesk/internal/client/api"
	"github.com/nsavkin/paperdesk/internal/client/models"
	"github.com/nsavkin/paperdesk/internal/logging"
)

// WarnFunc surfaces a non-blocking, user-visible warning.
type WarnFunc func(msg string)

// FeedbackRecorder applies the user's verdict on an assistant reply. The
// transition is optimistic with a warn-only confirmation policy: the local
// state is never reverted even when the backend confirmation fails (see
// Command).
type FeedbackRecorder struct {
	api     api.Client
	session *Session
	log     logging.Logger
	warn    WarnFunc
	nowFn   func() time.Time
}

func NewFeedbackRecorder(apiClient api.Client, session *Session, log logging.Logger, warn WarnFunc) *FeedbackRecorder {
	return &FeedbackRecorder{
		api:     apiClient,
		session: session,
		log:     log,
		warn:    warn,
		nowFn:   time.Now,
	}
}

// Record registers approval or rejection for a message. The approval state
// and an acknowledgment turn become visible immediately; the backend is
// confirmed afterwards. A repeated verdict is a no-op surfaced as
// ErrAlreadyRecorded, so neither the state nor the acknowledgment can
// double up.
func (f *FeedbackRecorder) Record(ctx context.Context, messageID string, approved bool) error {
	msg, ok := f.session.Get(messageID)
	if !ok {
		return ErrMessageNotFound
	}
	if msg.Approval == models.ApprovalApproved || msg.Approval == models.ApprovalRejected {
		return ErrAlreadyRecorded
	}
	if !msg.Actionable() {
		return ErrNotActionable
	}

	state := models.ApprovalRejected
	if approved {
		state = models.ApprovalApproved
	}

	cmd := Command{
		Policy: WarnOnly,
		Apply: func() error {
			if !f.session.SetApproval(messageID, state) {
				return ErrMessageNotFound
			}
			f.session.Append(f.acknowledgment(approved))
			return nil
		},
		Confirm: func(ctx context.Context) error {
			return f.api.SendFeedback(ctx, messageID, approved)
		},
		Warn: func(err error) {
			f.log.Warn(ctx, "feedback confirmation failed",
				"message_id", messageID, "error", err)
			if f.warn != nil {
				f.warn("Your feedback is saved in this session but may not have been recorded on the server.")
			}
		},
	}
	return cmd.Run(ctx)
}

func (f *FeedbackRecorder) acknowledgment(approved bool) models.Message {
	content := "Thanks for the feedback. I've noted that this response missed the mark and will adjust future suggestions."
	if approved {
		content = "Glad that helped! I've recorded your approval."
	}

	return models.Message{
		ID:        uuid.NewString(),
		Role:      models.RoleAssistant,
		Content:   content,
		Timestamp: f.nowFn(),
	}
}

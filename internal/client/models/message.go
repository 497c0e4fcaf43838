// Package models defines the conversation, attachment, paper and
// personalization types shared by the client layers.
package models

import "time"

// Role classifies who authored a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ApprovalState tracks the user's verdict on an assistant reply. The zero
// value means the turn is not actionable (user turns, acknowledgments,
// synthesized notices).
type ApprovalState string

const (
	ApprovalNone     ApprovalState = ""
	ApprovalPending  ApprovalState = "pending"
	ApprovalApproved ApprovalState = "approved"
	ApprovalRejected ApprovalState = "rejected"
)

// Message is a single turn in the session transcript. Messages are owned by
// exactly one session and are immutable after creation except for Approval,
// which transitions once from pending to approved or rejected.
type Message struct {
	ID          string
	Role        Role
	Content     string
	Timestamp   time.Time
	Attachments []Attachment
	Approval    ApprovalState
	CanMerge    bool
}

// Actionable reports whether a feedback verdict can still be recorded.
func (m *Message) Actionable() bool {
	return m.Role == RoleAssistant && m.Approval == ApprovalPending
}

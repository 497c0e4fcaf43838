package services

import (
	"sync"

	"github.com/nsavkin/paperdesk/internal/client/models"
)

// Session owns the transcript for one conversation scope. The scope is the
// active paper id, or empty for the unscoped conversation. Messages are
// append-only; the only permitted mutation is the one-shot approval
// transition.
type Session struct {
	mu       sync.Mutex
	scope    string
	messages []models.Message
	inFlight bool
}

func NewSession() *Session {
	return &Session{}
}

// Scope returns the paper id the transcript is attached to.
func (s *Session) Scope() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scope
}

// Reset clears the transcript and rebinds the session to a new scope.
// Attachments of discarded messages go with them; nothing is shared across
// scopes.
func (s *Session) Reset(scope string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scope = scope
	s.messages = nil
}

// Replace installs a freshly loaded transcript, but only if scope is still
// the session's current scope. A false return means the load went stale
// while in flight and its result was discarded (last-scope-wins).
func (s *Session) Replace(msgs []models.Message, scope string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scope != scope {
		return false
	}
	s.messages = append([]models.Message(nil), msgs...)
	return true
}

// Append adds one turn to the transcript.
func (s *Session) Append(msg models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message(nil), s.messages...)
}

// Len reports the transcript length.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// Get looks a message up by id.
func (s *Session) Get(id string) (models.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.messages {
		if m.ID == id {
			return m, true
		}
	}
	return models.Message{}, false
}

// At returns the message at a transcript position.
func (s *Session) At(i int) (models.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.messages) {
		return models.Message{}, false
	}
	return s.messages[i], true
}

// SetApproval applies the approval transition to a message.
func (s *Session) SetApproval(id string, state models.ApprovalState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].Approval = state
			return true
		}
	}
	return false
}

// BeginSend claims the single outstanding-send slot. A second send attempt
// while one is in flight is rejected, not queued.
func (s *Session) BeginSend() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return ErrSendInFlight
	}
	s.inFlight = true
	return nil
}

// EndSend releases the slot once the in-flight send settles.
func (s *Session) EndSend() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
}

// Sending reports whether a send is outstanding; the input affordance is
// disabled exactly while this is true.
func (s *Session) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

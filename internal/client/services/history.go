package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nsavkin/paperdesk/internal/client/api"
	"github.com/nsavkin/paperdesk/internal/client/models"
	"github.com/nsavkin/paperdesk/internal/logging"
)

// welcomeMessageID marks the synthesized welcome turn so it can be
// regenerated while it is still the only message in the transcript.
const welcomeMessageID = "welcome"

// HistoryLoader populates the session transcript for a conversation scope.
type HistoryLoader struct {
	api      api.Client
	session  *Session
	resolver *SettingsResolver
	log      logging.Logger
	nowFn    func() time.Time
}

func NewHistoryLoader(apiClient api.Client, session *Session, resolver *SettingsResolver, log logging.Logger) *HistoryLoader {
	return &HistoryLoader{
		api:      apiClient,
		session:  session,
		resolver: resolver,
		log:      log,
		nowFn:    time.Now,
	}
}

// Load clears the transcript, fetches the prior turns for the given paper
// (nil for the unscoped conversation) and installs them. If the scope
// changes again while the fetch is in flight, the stale result is discarded
// rather than applied: the scope captured here is compared against the
// session's current scope at installation time.
//
// An empty history, or a missing bearer token, yields a single synthesized
// welcome turn embedding the currently resolved settings. History fetch
// failures degrade the same way; they never block the conversation.
func (l *HistoryLoader) Load(ctx context.Context, paper *models.Paper) ([]models.Message, error) {
	scope := ""
	title := ""
	if paper != nil {
		scope = paper.ID
		title = paper.Title
	}

	l.session.Reset(scope)

	settings := l.resolver.Resolve(ctx, scope)

	var turns []api.HistoryTurn
	if l.api.HasToken() {
		var err error
		turns, err = l.api.History(ctx, scope)
		if err != nil {
			l.log.Warn(ctx, "history unavailable, starting fresh",
				"paper_id", scope, "error", err)
			turns = nil
		}
	}

	msgs := make([]models.Message, 0, len(turns))
	for _, turn := range turns {
		msgs = append(msgs, l.turnToMessage(turn))
	}
	if len(msgs) == 0 {
		msgs = append(msgs, l.welcome(settings, title))
	}

	if !l.session.Replace(msgs, scope) {
		// A newer scope took over while this load was in flight.
		l.log.Debug(ctx, "discarding stale history load", "paper_id", scope)
		return nil, nil
	}
	return l.session.Messages(), nil
}

// RefreshWelcome regenerates the synthesized welcome turn so it reflects
// settings edited before the first real exchange. It only acts while the
// welcome is the sole message; the welcome is informational and never
// persisted.
func (l *HistoryLoader) RefreshWelcome(ctx context.Context, paper *models.Paper) {
	msgs := l.session.Messages()
	if len(msgs) != 1 || msgs[0].ID != welcomeMessageID {
		return
	}

	scope := ""
	title := ""
	if paper != nil {
		scope = paper.ID
		title = paper.Title
	}

	settings := l.resolver.Resolve(ctx, scope)
	l.session.Replace([]models.Message{l.welcome(settings, title)}, scope)
}

// turnToMessage maps a stored turn into a session message, translating the
// server's role vocabulary into the two-value enum. Historical assistant
// turns stay mergeable but their feedback window is closed.
func (l *HistoryLoader) turnToMessage(turn api.HistoryTurn) models.Message {
	role := models.RoleAssistant
	switch strings.ToLower(turn.Role) {
	case "user", "human":
		role = models.RoleUser
	}

	msg := models.Message{
		ID:        turn.ID,
		Role:      role,
		Content:   turn.Content,
		Timestamp: turn.CreatedAt,
		CanMerge:  role == models.RoleAssistant,
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = l.nowFn()
	}
	return msg
}

func (l *HistoryLoader) welcome(s models.PersonalizationSettings, title string) models.Message {
	var b strings.Builder
	b.WriteString("Hello! I'm your research assistant.")
	if title != "" {
		fmt.Fprintf(&b, " We're working on %q.", title)
	}
	fmt.Fprintf(&b, " Personalization in effect: lab influence %d/10, personal influence %d/10, global influence %d/10, %s style, %s context depth.",
		s.LabInfluence, s.PersonalInfluence, s.GlobalInfluence, s.WritingStyle, s.ContextDepth)
	b.WriteString(" Ask me anything about your research, or attach a PDF or text file to discuss it.")

	return models.Message{
		ID:        welcomeMessageID,
		Role:      models.RoleAssistant,
		Content:   b.String(),
		Timestamp: l.nowFn(),
	}
}

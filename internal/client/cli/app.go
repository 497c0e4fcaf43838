package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/nsavkin/paperdesk/internal/client/api"
	"github.com/nsavkin/paperdesk/internal/client/config"
	"github.com/nsavkin/paperdesk/internal/client/models"
	"github.com/nsavkin/paperdesk/internal/client/services"
	"github.com/nsavkin/paperdesk/internal/logging"
)

// App wires the session services to the interactive REPL. All state that
// outlives a single command lives here: the active paper, the cached paper
// list, and the account preferences loaded for editing.
type App struct {
	config *config.Config
	api    api.Client
	log    logging.Logger

	session  *services.Session
	resolver *services.SettingsResolver
	stager   *services.Stager
	chat     *services.Chat
	history  *services.HistoryLoader
	feedback *services.FeedbackRecorder
	merger   *services.SectionMerger

	reader *bufio.Reader

	papers       []models.Paper
	activePaper  *models.Paper
	model        models.Model
	accountPrefs *models.SettingsPatch
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	model, err := models.ParseModel(c.Model)
	if err != nil {
		return nil, fmt.Errorf("config model: %w", err)
	}

	apiClient := api.New(c.ServerBaseURL, c.Token, c.RequestTimeout, log)

	session := services.NewSession()
	resolver := services.NewSettingsResolver(apiClient, log)
	stager := services.NewStager()

	app := &App{
		config:   c,
		api:      apiClient,
		log:      log,
		session:  session,
		resolver: resolver,
		stager:   stager,
		chat:     services.NewChat(apiClient, session, resolver, stager, log),
		history:  services.NewHistoryLoader(apiClient, session, resolver, log),
		merger:   services.NewSectionMerger(apiClient, log),
		reader:   bufio.NewReader(os.Stdin),
		model:    model,
	}
	app.feedback = services.NewFeedbackRecorder(apiClient, session, log, func(msg string) {
		printlnFn("Warning:", msg)
	})
	return app, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	printlnFn("PaperDesk CLI (type 'help' for commands)")
	a.reloadTranscript(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.api.HasToken()
}

func (a *App) getStatus() string {
	s := "guest"
	if a.isLoggedIn() {
		s = "online"
	}
	if a.activePaper != nil {
		s = s + " " + a.activePaper.Title
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) paperID() string {
	if a.activePaper == nil {
		return ""
	}
	return a.activePaper.ID
}

// reloadTranscript loads the conversation for the active paper and renders
// it. A nil result means the load lost a paper switch race and the winning
// load already rendered.
func (a *App) reloadTranscript(ctx context.Context) {
	msgs, err := a.history.Load(ctx, a.activePaper)
	if err != nil {
		printlnFn("Could not load history:", err.Error())
		return
	}
	for i, m := range msgs {
		renderMessage(i, m)
	}
}

// messageAt resolves a 1-based transcript number typed by the user.
func (a *App) messageAt(arg string) (models.Message, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return models.Message{}, fmt.Errorf("message number expected, got %q", arg)
	}
	msg, ok := a.session.At(n - 1)
	if !ok {
		return models.Message{}, fmt.Errorf("no message %d in the transcript", n)
	}
	return msg, nil
}

func renderMessage(i int, m models.Message) {
	marker := ""
	switch m.Approval {
	case models.ApprovalPending:
		marker = " [pending]"
	case models.ApprovalApproved:
		marker = " [approved]"
	case models.ApprovalRejected:
		marker = " [rejected]"
	}
	printlnFn(fmt.Sprintf("[%d] %s%s: %s", i+1, m.Role, marker, m.Content))
	for j, att := range m.Attachments {
		printlnFn(fmt.Sprintf("    %d. %s (%s, %d bytes)", j+1, att.Name, att.Category, att.SizeBytes))
	}
}

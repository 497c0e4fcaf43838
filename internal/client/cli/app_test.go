package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nsavkin/paperdesk/internal/client/api"
	"github.com/nsavkin/paperdesk/internal/client/config"
	"github.com/nsavkin/paperdesk/internal/client/models"
	"github.com/nsavkin/paperdesk/internal/client/services"
	"github.com/nsavkin/paperdesk/internal/logging"
)

// fakeClient implements the backend surface the App needs. Methods that a
// test does not exercise panic through the embedded nil interface.
type fakeClient struct {
	api.Client

	token bool

	papers    []models.Paper
	papersErr error

	turns    []api.HistoryTurn
	turnsErr error

	reply   api.ChatReply
	sendErr error

	account        *models.SettingsPatch
	paperPatch     *models.SettingsPatch
	saveAccountErr error
	savedAccount   *models.SettingsPatch

	feedbackID      string
	feedbackHelpful bool
	feedbackCalls   int

	addResult int
	addCalls  int

	download    []byte
	downloadErr error
}

func (f *fakeClient) HasToken() bool { return f.token }

func (f *fakeClient) ListPapers(ctx context.Context) ([]models.Paper, error) {
	return f.papers, f.papersErr
}

func (f *fakeClient) History(ctx context.Context, paperID string) ([]api.HistoryTurn, error) {
	return f.turns, f.turnsErr
}

func (f *fakeClient) SendChat(ctx context.Context, send api.ChatSend) (api.ChatReply, error) {
	return f.reply, f.sendErr
}

func (f *fakeClient) AccountPreferences(ctx context.Context) (*models.SettingsPatch, error) {
	return f.account, nil
}

func (f *fakeClient) PaperSettings(ctx context.Context, paperID string) (*models.SettingsPatch, error) {
	return f.paperPatch, nil
}

func (f *fakeClient) SaveAccountPreferences(ctx context.Context, patch models.SettingsPatch) error {
	if f.saveAccountErr != nil {
		return f.saveAccountErr
	}
	f.savedAccount = &patch
	return nil
}

func (f *fakeClient) SendFeedback(ctx context.Context, messageID string, helpful bool) error {
	f.feedbackCalls++
	f.feedbackID = messageID
	f.feedbackHelpful = helpful
	return nil
}

func (f *fakeClient) AddToSection(ctx context.Context, add api.SectionAdd) (int, error) {
	f.addCalls++
	return f.addResult, nil
}

func (f *fakeClient) Download(ctx context.Context, ref string) ([]byte, error) {
	return f.download, f.downloadErr
}

func newTestApp(f *fakeClient) *App {
	log := logging.NewDiscard()
	session := services.NewSession()
	resolver := services.NewSettingsResolver(f, log)
	stager := services.NewStager()

	app := &App{
		config:   &config.Config{DownloadsDir: "downloads"},
		api:      f,
		log:      log,
		session:  session,
		resolver: resolver,
		stager:   stager,
		chat:     services.NewChat(f, session, resolver, stager, log),
		history:  services.NewHistoryLoader(f, session, resolver, log),
		merger:   services.NewSectionMerger(f, log),
		reader:   bufio.NewReader(strings.NewReader("")),
		model:    models.ModelGemini,
	}
	app.feedback = services.NewFeedbackRecorder(f, session, log, func(msg string) {
		printlnFn("Warning:", msg)
	})
	return app
}

// captureOutput redirects printlnFn into a slice for the duration of a test.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimRight(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func outputContains(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func TestNewApp_RejectsUnknownModel(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Model = "davinci"

	_, err := NewApp(cfg, logging.NewDiscard())

	require.ErrorIs(t, err, models.ErrUnknownModel)
}

func TestNewApp_OK(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	app, err := NewApp(cfg, logging.NewDiscard())

	require.NoError(t, err)
	require.False(t, app.isLoggedIn(), "no token configured")
}

func TestGetStatus(t *testing.T) {
	a := newTestApp(&fakeClient{})
	require.Equal(t, "(guest)", a.getStatus())

	a.api = &fakeClient{token: true}
	a.activePaper = &models.Paper{Title: "Graph Sparsity"}
	require.Equal(t, "(online Graph Sparsity)", a.getStatus())
}

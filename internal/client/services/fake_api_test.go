package services

import (
	"context"

	"github.com/nsavkin/paperdesk/internal/client/api"
	"github.com/nsavkin/paperdesk/internal/client/models"
)

// fakeAPI implements the subset of api.Client the session core touches.
// Unused methods fall through to the embedded nil interface and panic,
// which doubles as a call-count assertion for "no network call" paths.
type fakeAPI struct {
	api.Client

	account    *models.SettingsPatch
	accountErr error

	paperPatch *models.SettingsPatch
	paperErr   error
	paperCalls int

	reply    api.ChatReply
	sendErr  error
	sends    int
	lastSend api.ChatSend

	historyTurns []api.HistoryTurn
	historyErr   error
	historyCalls int
	historyHook  func(paperID string)

	token bool

	feedbackErr   error
	feedbackCalls int
	lastFeedback  struct {
		id      string
		helpful bool
	}

	addResult int
	addErr    error
	addCalls  int
	lastAdd   api.SectionAdd
}

func (f *fakeAPI) SendChat(ctx context.Context, send api.ChatSend) (api.ChatReply, error) {
	f.sends++
	f.lastSend = send
	return f.reply, f.sendErr
}

func (f *fakeAPI) History(ctx context.Context, paperID string) ([]api.HistoryTurn, error) {
	f.historyCalls++
	if f.historyHook != nil {
		f.historyHook(paperID)
	}
	return f.historyTurns, f.historyErr
}

func (f *fakeAPI) SendFeedback(ctx context.Context, messageID string, helpful bool) error {
	f.feedbackCalls++
	f.lastFeedback.id = messageID
	f.lastFeedback.helpful = helpful
	return f.feedbackErr
}

func (f *fakeAPI) AddToSection(ctx context.Context, add api.SectionAdd) (int, error) {
	f.addCalls++
	f.lastAdd = add
	return f.addResult, f.addErr
}

func (f *fakeAPI) PaperSettings(ctx context.Context, paperID string) (*models.SettingsPatch, error) {
	f.paperCalls++
	return f.paperPatch, f.paperErr
}

func (f *fakeAPI) AccountPreferences(ctx context.Context) (*models.SettingsPatch, error) {
	return f.account, f.accountErr
}

func (f *fakeAPI) HasToken() bool { return f.token }

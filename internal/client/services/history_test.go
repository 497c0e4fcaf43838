package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nsavkin/paperdesk/internal/client/api"
	"github.com/nsavkin/paperdesk/internal/client/models"
	"github.com/nsavkin/paperdesk/internal/logging"
)

func newHistoryFixture(f *fakeAPI) (*HistoryLoader, *Session) {
	session := NewSession()
	resolver := NewSettingsResolver(f, logging.NewDiscard())
	loader := NewHistoryLoader(f, session, resolver, logging.NewDiscard())
	return loader, session
}

func TestLoad_EmptyHistory_SynthesizesWelcome(t *testing.T) {
	f := &fakeAPI{
		token: true,
		account: &models.SettingsPatch{
			LabInfluence:      intp(7),
			PersonalInfluence: intp(3),
			GlobalInfluence:   intp(9),
		},
	}
	loader, _ := newHistoryFixture(f)

	msgs, err := loader.Load(context.Background(), &models.Paper{ID: "p-1", Title: "Graph Sparsity"})

	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, models.RoleAssistant, msgs[0].Role)

	// Resolved influence values appear verbatim.
	require.Contains(t, msgs[0].Content, "lab influence 7/10")
	require.Contains(t, msgs[0].Content, "personal influence 3/10")
	require.Contains(t, msgs[0].Content, "global influence 9/10")
	require.Contains(t, msgs[0].Content, `"Graph Sparsity"`)
	require.False(t, msgs[0].CanMerge)
}

func TestLoad_NoToken_DegradesToWelcomeWithoutFetch(t *testing.T) {
	f := &fakeAPI{token: false}
	loader, _ := newHistoryFixture(f)

	msgs, err := loader.Load(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, models.RoleAssistant, msgs[0].Role)
	require.Zero(t, f.historyCalls)
}

func TestLoad_FetchFailure_DegradesToWelcome(t *testing.T) {
	f := &fakeAPI{token: true, historyErr: errors.New("boom")}
	loader, _ := newHistoryFixture(f)

	msgs, err := loader.Load(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, msgs, 1)
}

func TestLoad_TranslatesServerRoles(t *testing.T) {
	f := &fakeAPI{
		token: true,
		historyTurns: []api.HistoryTurn{
			{ID: "t-1", Role: "human", Content: "hi", CreatedAt: time.Now()},
			{ID: "t-2", Role: "ai", Content: "hello", CreatedAt: time.Now()},
			{ID: "t-3", Role: "user", Content: "more", CreatedAt: time.Now()},
		},
	}
	loader, _ := newHistoryFixture(f)

	msgs, err := loader.Load(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, msgs, 3)
	require.Equal(t, models.RoleUser, msgs[0].Role)
	require.Equal(t, models.RoleAssistant, msgs[1].Role)
	require.True(t, msgs[1].CanMerge)
	require.Equal(t, models.RoleUser, msgs[2].Role)
	require.False(t, msgs[0].CanMerge)
}

func TestLoad_StaleScopeDiscarded(t *testing.T) {
	f := &fakeAPI{
		token:        true,
		historyTurns: []api.HistoryTurn{{ID: "old", Role: "user", Content: "from p-1"}},
	}
	loader, session := newHistoryFixture(f)

	// While the load for p-1 is in flight, the user switches to p-2.
	f.historyHook = func(paperID string) {
		if paperID == "p-1" {
			session.Reset("p-2")
		}
	}

	msgs, err := loader.Load(context.Background(), &models.Paper{ID: "p-1"})

	require.NoError(t, err)
	require.Nil(t, msgs, "stale load result must be discarded")
	require.Equal(t, "p-2", session.Scope())
	require.Zero(t, session.Len(), "no transcript from the wrong paper")
}

func TestRefreshWelcome_WhileOnlyMessage(t *testing.T) {
	f := &fakeAPI{token: true, account: &models.SettingsPatch{LabInfluence: intp(2)}}
	loader, session := newHistoryFixture(f)

	_, err := loader.Load(context.Background(), nil)
	require.NoError(t, err)
	require.Contains(t, session.Messages()[0].Content, "lab influence 2/10")

	f.account = &models.SettingsPatch{LabInfluence: intp(6)}
	loader.RefreshWelcome(context.Background(), nil)

	msgs := session.Messages()
	require.Len(t, msgs, 1)
	require.Contains(t, msgs[0].Content, "lab influence 6/10")
}

func TestRefreshWelcome_NoOpOnceConversationStarted(t *testing.T) {
	f := &fakeAPI{token: true}
	loader, session := newHistoryFixture(f)

	_, err := loader.Load(context.Background(), nil)
	require.NoError(t, err)

	session.Append(models.Message{ID: "u-1", Role: models.RoleUser, Content: "hi"})
	before := session.Messages()

	loader.RefreshWelcome(context.Background(), nil)

	require.Equal(t, before, session.Messages())
}

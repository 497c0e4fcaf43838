package cli

import (
	"context"
	"os"
)

// getToken is an indirection used to facilitate testing. It points to the
// interactive input helper and can be swapped in tests.
var getToken = GetToken

// Login prompts for an access token (hidden input) and installs it on the
// API client. An empty or expired token leaves the client in guest mode,
// where history degrades to the welcome message. On success the transcript
// is reloaded so server history becomes visible.
func (a *App) Login(ctx context.Context) error {
	token, err := getToken(os.Stdout)
	if err != nil {
		return err
	}

	a.api.SetToken(token)
	a.accountPrefs = nil

	if !a.api.HasToken() {
		printlnFn("Token is empty or expired; continuing as guest.")
		return nil
	}

	printlnFn("Token saved.")
	a.reloadTranscript(ctx)
	return nil
}

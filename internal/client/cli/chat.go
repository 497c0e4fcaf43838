package cli

import (
	"context"
	"errors"
	"os"

	"github.com/nsavkin/paperdesk/internal/client/services"
)

// SendMessage dispatches a chat line to the assistant and renders the
// reply. A connectivity failure still produces a rendered message: the
// transport synthesizes an in-transcript notice instead of failing.
func (a *App) SendMessage(ctx context.Context, text string) error {
	reply, err := a.chat.Send(ctx, text, a.model, a.activePaper)
	if err != nil {
		if errors.Is(err, services.ErrSendInFlight) {
			printlnFn("A message is already being sent; wait for the reply.")
			return err
		}
		printlnFn("Send failed:", err.Error())
		return err
	}
	if reply == nil {
		return nil
	}
	renderMessage(a.session.Len()-1, *reply)
	return nil
}

// Compose reads a multiline message body and sends it.
func (a *App) Compose(ctx context.Context) error {
	text, err := GetMultiline(a.reader, "Write your message", os.Stdout)
	if err != nil {
		return err
	}
	return a.SendMessage(ctx, text)
}

// History prints the whole transcript for the active paper.
func (a *App) History(ctx context.Context) error {
	msgs := a.session.Messages()
	if len(msgs) == 0 {
		printlnFn("The transcript is empty.")
		return nil
	}
	for i, m := range msgs {
		renderMessage(i, m)
	}
	return nil
}

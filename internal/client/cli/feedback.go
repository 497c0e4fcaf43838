package cli

import (
	"context"
	"errors"

	"github.com/nsavkin/paperdesk/internal/client/services"
)

// Approve records positive feedback for an assistant reply by its number in
// the transcript.
func (a *App) Approve(ctx context.Context, arg string) error {
	return a.record(ctx, arg, true)
}

// Reject records negative feedback for an assistant reply by its number in
// the transcript.
func (a *App) Reject(ctx context.Context, arg string) error {
	return a.record(ctx, arg, false)
}

func (a *App) record(ctx context.Context, arg string, approved bool) error {
	msg, err := a.messageAt(arg)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.feedback.Record(ctx, msg.ID, approved); err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyRecorded):
			printlnFn("Feedback for this reply is already recorded.")
		case errors.Is(err, services.ErrNotActionable):
			printlnFn("Only pending assistant replies accept feedback.")
		default:
			printlnFn("Feedback failed:", err.Error())
		}
		return err
	}

	printlnFn("Recorded.")
	return nil
}

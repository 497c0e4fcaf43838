package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/nsavkin/paperdesk/internal/client/api"
	"github.com/nsavkin/paperdesk/internal/client/models"
	"github.com/nsavkin/paperdesk/internal/client/services"
)

// MergeSection merges an assistant reply into a section of the active
// paper. By default the content is appended; replace overwrites the
// section.
func (a *App) MergeSection(ctx context.Context, msgArg, sectionArg string, replace bool) error {
	msg, err := a.messageAt(msgArg)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	section, err := models.ParseSection(sectionArg)
	if err != nil {
		printlnFn(fmt.Sprintf("Unknown section %q; run 'sections' to see the list.", sectionArg))
		return err
	}

	count, err := a.merger.Merge(ctx, a.activePaper, msg, section, !replace)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoActivePaper):
			printlnFn("Select a paper first ('papers', then 'use <n>').")
		case errors.Is(err, services.ErrNotMergeable):
			printlnFn("This message cannot be merged into a section.")
		case errors.Is(err, api.ErrAuthExpired):
			printlnFn("Your session expired; run 'login' again.")
		default:
			printlnFn("Merge failed:", err.Error())
		}
		return err
	}

	printlnFn(fmt.Sprintf("Merged into %s; the paper is now %d words.", section, count))
	return nil
}

// Sections lists valid merge targets in document order.
func (a *App) Sections() error {
	for _, s := range models.Sections {
		printlnFn(string(s))
	}
	return nil
}

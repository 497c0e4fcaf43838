package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nsavkin/paperdesk/internal/client/api"
	"github.com/nsavkin/paperdesk/internal/client/models"
	"github.com/nsavkin/paperdesk/internal/logging"
)

// SectionMerger sends an assistant message's content to be appended into a
// named section of the active paper.
type SectionMerger struct {
	api api.Client
	log logging.Logger
}

func NewSectionMerger(apiClient api.Client, log logging.Logger) *SectionMerger {
	return &SectionMerger{api: apiClient, log: log}
}

// Merge performs the merge and returns the section's new total word count.
// Without an active paper it fails with ErrNoActivePaper before any network
// call. Auth, permission and not-found failures pass through as their api
// sentinels; everything else becomes ErrMergeFailed with the server's
// detail. The cached paper object is left alone: the caller refreshes paper
// state from the canonical source.
func (m *SectionMerger) Merge(ctx context.Context, paper *models.Paper, msg models.Message, section models.Section, appendContent bool) (int, error) {
	if paper == nil {
		return 0, ErrNoActivePaper
	}
	if !msg.CanMerge {
		return 0, ErrNotMergeable
	}

	count, err := m.api.AddToSection(ctx, api.SectionAdd{
		MessageID: msg.ID,
		PaperID:   paper.ID,
		Section:   section,
		Content:   msg.Content,
		Append:    appendContent,
	})
	if err != nil {
		if errors.Is(err, api.ErrAuthExpired) ||
			errors.Is(err, api.ErrForbidden) ||
			errors.Is(err, api.ErrNotFound) ||
			errors.Is(err, api.ErrUnavailable) {
			return 0, err
		}

		var se *api.StatusError
		if errors.As(err, &se) && se.Detail != "" {
			return 0, fmt.Errorf("%w: %s", ErrMergeFailed, se.Detail)
		}
		return 0, fmt.Errorf("%w: %v", ErrMergeFailed, err)
	}

	m.log.Info(ctx, "merged message into section",
		"paper_id", paper.ID, "section", section, "word_count", count)
	return count, nil
}

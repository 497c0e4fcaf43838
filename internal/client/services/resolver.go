package services

import (
	"context"

	"github.com/nsavkin/paperdesk/internal/client/api"
	"github.com/nsavkin/paperdesk/internal/client/models"
	"github.com/nsavkin/paperdesk/internal/logging"
)

// SettingsResolver computes the effective personalization configuration for
// a conversation: per-paper layer over account layer over built-in defaults,
// field by field. Results are never cached: the layers can change between
// calls, so callers re-resolve on every paper switch and immediately before
// each send.
type SettingsResolver struct {
	api api.Client
	log logging.Logger
}

func NewSettingsResolver(apiClient api.Client, log logging.Logger) *SettingsResolver {
	return &SettingsResolver{api: apiClient, log: log}
}

// Resolve returns the settings in effect for the given paper scope (empty
// for the unscoped conversation). Resolution never fails: a missing or
// unreachable layer falls back to the layer below it. Per-paper settings
// are an enhancement, not a requirement, so their absence is logged rather
// than surfaced.
func (r *SettingsResolver) Resolve(ctx context.Context, paperID string) models.PersonalizationSettings {
	account := r.accountLayer(ctx)

	if paperID == "" {
		return models.ResolveSettings(account, nil)
	}

	paper, err := r.api.PaperSettings(ctx, paperID)
	if err != nil {
		r.log.Warn(ctx, "per-paper settings unavailable, using account layer",
			"paper_id", paperID, "error", err)
		return models.ResolveSettings(account, nil)
	}
	return models.ResolveSettings(account, paper)
}

func (r *SettingsResolver) accountLayer(ctx context.Context) *models.SettingsPatch {
	patch, err := r.api.AccountPreferences(ctx)
	if err != nil {
		r.log.Warn(ctx, "account preferences unavailable, using defaults", "error", err)
		return nil
	}
	return patch
}

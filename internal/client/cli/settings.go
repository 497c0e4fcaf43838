package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nsavkin/paperdesk/internal/client/models"
	"github.com/nsavkin/paperdesk/internal/client/services"
)

// Settings with no arguments re-resolves and prints the personalization
// settings in effect for the active paper. With a field and a value it
// changes the account layer and saves it to the backend; the local change
// is rolled back if the save fails.
//
// Editable fields: lab, personal, global (1..10), style, depth, focus
// (comma-separated).
func (a *App) Settings(ctx context.Context, args []string) error {
	if len(args) == 0 {
		s := a.resolver.Resolve(ctx, a.paperID())
		printlnFn("lab influence:     ", s.LabInfluence)
		printlnFn("personal influence:", s.PersonalInfluence)
		printlnFn("global influence:  ", s.GlobalInfluence)
		printlnFn("writing style:     ", string(s.WritingStyle))
		printlnFn("context depth:     ", string(s.ContextDepth))
		if len(s.ResearchFocus) > 0 {
			printlnFn("research focus:    ", strings.Join(s.ResearchFocus, ", "))
		}
		return nil
	}

	if len(args) != 2 {
		printlnFn("Usage: settings [<field> <value>]")
		return nil
	}
	return a.saveAccountSetting(ctx, args[0], args[1])
}

func (a *App) saveAccountSetting(ctx context.Context, field, value string) error {
	if a.accountPrefs == nil {
		prefs, err := a.api.AccountPreferences(ctx)
		if err != nil {
			printlnFn("Could not load preferences:", err.Error())
			return err
		}
		if prefs == nil {
			prefs = &models.SettingsPatch{}
		}
		a.accountPrefs = prefs
	}

	prev := *a.accountPrefs
	cmd := services.Command{
		Policy: services.RollbackOnFailure,
		Apply: func() error {
			return applySettingField(a.accountPrefs, field, value)
		},
		Confirm: func(ctx context.Context) error {
			return a.api.SaveAccountPreferences(ctx, *a.accountPrefs)
		},
		Rollback: func() {
			*a.accountPrefs = prev
		},
	}

	if err := cmd.Run(ctx); err != nil {
		printlnFn("Settings not saved:", err.Error())
		return err
	}

	printlnFn("Saved.")
	a.history.RefreshWelcome(ctx, a.activePaper)
	return nil
}

func applySettingField(p *models.SettingsPatch, field, value string) error {
	switch field {
	case "lab", "personal", "global":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > 10 {
			return fmt.Errorf("influence must be a number from 1 to 10, got %q", value)
		}
		switch field {
		case "lab":
			p.LabInfluence = &n
		case "personal":
			p.PersonalInfluence = &n
		case "global":
			p.GlobalInfluence = &n
		}

	case "style":
		switch s := models.WritingStyle(value); s {
		case models.StyleAcademic, models.StyleConcise, models.StyleDetailed, models.StyleCollaborative:
			p.WritingStyle = &s
		default:
			return fmt.Errorf("unknown writing style %q", value)
		}

	case "depth":
		switch d := models.ContextDepth(value); d {
		case models.DepthMinimal, models.DepthModerate, models.DepthComprehensive:
			p.ContextDepth = &d
		default:
			return fmt.Errorf("unknown context depth %q", value)
		}

	case "focus":
		p.ResearchFocus = strings.Split(value, ",")

	default:
		return fmt.Errorf("unknown setting %q", field)
	}
	return nil
}

package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intp(v int) *int                    { return &v }
func stylep(v WritingStyle) *WritingStyle { return &v }
func depthp(v ContextDepth) *ContextDepth { return &v }

func TestResolveSettings_PaperLayerWins(t *testing.T) {
	account := &SettingsPatch{
		LabInfluence:    intp(8),
		GlobalInfluence: intp(2),
		WritingStyle:    stylep(StyleConcise),
	}
	paper := &SettingsPatch{
		LabInfluence:  intp(3),
		ContextDepth:  depthp(DepthComprehensive),
		ResearchFocus: []string{"federated learning"},
	}

	got := ResolveSettings(account, paper)

	require.Equal(t, 3, got.LabInfluence)                          // paper over account
	require.Equal(t, 2, got.GlobalInfluence)                       // account over default
	require.Equal(t, 5, got.PersonalInfluence)                     // default
	require.Equal(t, StyleConcise, got.WritingStyle)               // account, paper silent
	require.Equal(t, DepthComprehensive, got.ContextDepth)         // paper
	require.Equal(t, []string{"federated learning"}, got.ResearchFocus)
}

func TestResolveSettings_PresentZeroValueWins(t *testing.T) {
	// A layer that explicitly sets 0 is present, not absent.
	paper := &SettingsPatch{PersonalInfluence: intp(0)}

	got := ResolveSettings(nil, paper)

	require.Equal(t, 0, got.PersonalInfluence)
}

func TestResolveSettings_AbsentLayers(t *testing.T) {
	got := ResolveSettings(nil, nil)
	require.Equal(t, DefaultSettings(), got)

	account := &SettingsPatch{LabInfluence: intp(9)}
	got = ResolveSettings(account, nil)
	require.Equal(t, 9, got.LabInfluence)
	require.Equal(t, StyleAcademic, got.WritingStyle)
}

func TestResolveSettings_EmptyFocusIsDefined(t *testing.T) {
	account := &SettingsPatch{ResearchFocus: []string{"nlp"}}
	paper := &SettingsPatch{ResearchFocus: []string{}}

	got := ResolveSettings(account, paper)

	require.NotNil(t, got.ResearchFocus)
	require.Empty(t, got.ResearchFocus)
}

func TestApplyTo_DoesNotAliasFocusSlice(t *testing.T) {
	focus := []string{"robotics"}
	p := SettingsPatch{ResearchFocus: focus}

	got := p.ApplyTo(DefaultSettings())
	focus[0] = "mutated"

	require.Equal(t, "robotics", got.ResearchFocus[0])
}

package models

// WritingStyle selects the assistant's prose register.
type WritingStyle string

const (
	StyleAcademic      WritingStyle = "academic"
	StyleConcise       WritingStyle = "concise"
	StyleDetailed      WritingStyle = "detailed"
	StyleCollaborative WritingStyle = "collaborative"
)

// ContextDepth selects how much paper context the assistant is given.
type ContextDepth string

const (
	DepthMinimal       ContextDepth = "minimal"
	DepthModerate      ContextDepth = "moderate"
	DepthComprehensive ContextDepth = "comprehensive"
)

// PersonalizationSettings is the concrete configuration in effect for a
// send, after the account and per-paper layers have been merged over the
// built-in defaults. Influence values are on a 1..10 scale.
type PersonalizationSettings struct {
	LabInfluence      int          `json:"lab_influence"`
	PersonalInfluence int          `json:"personal_influence"`
	GlobalInfluence   int          `json:"global_influence"`
	WritingStyle      WritingStyle `json:"writing_style"`
	ContextDepth      ContextDepth `json:"context_depth"`
	ResearchFocus     []string     `json:"research_focus"`
}

// DefaultSettings returns the built-in bottom layer of the cascade.
func DefaultSettings() PersonalizationSettings {
	return PersonalizationSettings{
		LabInfluence:      5,
		PersonalInfluence: 5,
		GlobalInfluence:   5,
		WritingStyle:      StyleAcademic,
		ContextDepth:      DepthModerate,
	}
}

// SettingsPatch is one persisted layer of the cascade (account-level or
// per-paper). Nil fields are "not defined by this layer" and let the layer
// below show through; a non-nil pointer always wins, including explicit
// zero values. ResearchFocus distinguishes nil (undefined) from an empty
// slice (defined as empty).
type SettingsPatch struct {
	LabInfluence      *int          `json:"lab_influence,omitempty"`
	PersonalInfluence *int          `json:"personal_influence,omitempty"`
	GlobalInfluence   *int          `json:"global_influence,omitempty"`
	WritingStyle      *WritingStyle `json:"writing_style,omitempty"`
	ContextDepth      *ContextDepth `json:"context_depth,omitempty"`
	ResearchFocus     []string      `json:"research_focus,omitempty"`
}

// ApplyTo merges the patch over base, field by field.
func (p SettingsPatch) ApplyTo(base PersonalizationSettings) PersonalizationSettings {
	out := base
	if p.LabInfluence != nil {
		out.LabInfluence = *p.LabInfluence
	}
	if p.PersonalInfluence != nil {
		out.PersonalInfluence = *p.PersonalInfluence
	}
	if p.GlobalInfluence != nil {
		out.GlobalInfluence = *p.GlobalInfluence
	}
	if p.WritingStyle != nil {
		out.WritingStyle = *p.WritingStyle
	}
	if p.ContextDepth != nil {
		out.ContextDepth = *p.ContextDepth
	}
	if p.ResearchFocus != nil {
		out.ResearchFocus = append([]string(nil), p.ResearchFocus...)
	}
	return out
}

// ResolveSettings computes the effective settings for a conversation:
// paper over account over defaults. Either layer may be nil (absent).
func ResolveSettings(account, paper *SettingsPatch) PersonalizationSettings {
	eff := DefaultSettings()
	if account != nil {
		eff = account.ApplyTo(eff)
	}
	if paper != nil {
		eff = paper.ApplyTo(eff)
	}
	return eff
}

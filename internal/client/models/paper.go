package models

import "time"

// Paper is the full paper record as the backend returns it.
type Paper struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Status           string    `json:"status"`
	Progress         int       `json:"progress"`
	ResearchArea     string    `json:"research_area"`
	Abstract         string    `json:"abstract"`
	CurrentWordCount int       `json:"current_word_count"`
	TargetWordCount  int       `json:"target_word_count"`
	Authors          []string  `json:"authors,omitempty"`
	Venue            string    `json:"venue,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// PaperContext is the trimmed subset of a paper that travels with a chat
// request. Only these fields go on the wire; the full record stays local.
type PaperContext struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Status           string `json:"status"`
	Progress         int    `json:"progress"`
	ResearchArea     string `json:"research_area"`
	Abstract         string `json:"abstract"`
	CurrentWordCount int    `json:"current_word_count"`
	TargetWordCount  int    `json:"target_word_count"`
}

// Context trims the paper to the wire subset.
func (p *Paper) Context() *PaperContext {
	if p == nil {
		return nil
	}
	return &PaperContext{
		ID:               p.ID,
		Title:            p.Title,
		Status:           p.Status,
		Progress:         p.Progress,
		ResearchArea:     p.ResearchArea,
		Abstract:         p.Abstract,
		CurrentWordCount: p.CurrentWordCount,
		TargetWordCount:  p.TargetWordCount,
	}
}

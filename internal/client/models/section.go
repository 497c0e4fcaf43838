package models

import (
	"errors"
	"fmt"
)

// Section names a region of a paper's body that assistant content can be
// merged into. The set is closed; the backend rejects anything else.
type Section string

const (
	SectionAbstract         Section = "abstract"
	SectionIntroduction     Section = "introduction"
	SectionLiteratureReview Section = "literature_review"
	SectionMethodology      Section = "methodology"
	SectionResults          Section = "results"
	SectionDiscussion       Section = "discussion"
	SectionConclusion       Section = "conclusion"
)

// Sections lists all valid merge targets in document order.
var Sections = []Section{
	SectionAbstract,
	SectionIntroduction,
	SectionLiteratureReview,
	SectionMethodology,
	SectionResults,
	SectionDiscussion,
	SectionConclusion,
}

var ErrUnknownSection = errors.New("unknown section")

// ParseSection validates a user-supplied section name.
func ParseSection(s string) (Section, error) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

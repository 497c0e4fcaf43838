package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActionable(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want bool
	}{
		{"pending assistant reply", Message{Role: RoleAssistant, Approval: ApprovalPending}, true},
		{"already approved", Message{Role: RoleAssistant, Approval: ApprovalApproved}, false},
		{"already rejected", Message{Role: RoleAssistant, Approval: ApprovalRejected}, false},
		{"user turn", Message{Role: RoleUser, Approval: ApprovalNone}, false},
		{"non-actionable assistant turn", Message{Role: RoleAssistant, Approval: ApprovalNone}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.msg.Actionable())
		})
	}
}

func TestCategoryForName(t *testing.T) {
	tests := []struct {
		name string
		cat  MimeCategory
		ok   bool
	}{
		{"notes.pdf", MimePDF, true},
		{"NOTES.PDF", MimePDF, true},
		{"draft.txt", MimeText, true},
		{"thesis.docx", "", false},
		{"noext", "", false},
	}

	for _, tc := range tests {
		cat, ok := CategoryForName(tc.name)
		require.Equal(t, tc.ok, ok, tc.name)
		require.Equal(t, tc.cat, cat, tc.name)
	}
}

func TestParseSection(t *testing.T) {
	sec, err := ParseSection("literature_review")
	require.NoError(t, err)
	require.Equal(t, SectionLiteratureReview, sec)

	_, err = ParseSection("appendix")
	require.ErrorIs(t, err, ErrUnknownSection)
}

func TestParseModel(t *testing.T) {
	m, err := ParseModel("gpt-4")
	require.NoError(t, err)
	require.Equal(t, ModelGPT4, m)

	_, err = ParseModel("claude")
	require.ErrorIs(t, err, ErrUnknownModel)
}

func TestPaperContext_TrimsToWireSubset(t *testing.T) {
	p := &Paper{
		ID:               "p-1",
		Title:            "Survey of Federated Learning",
		Status:           "draft",
		Progress:         40,
		ResearchArea:     "machine learning",
		Abstract:         "An overview.",
		CurrentWordCount: 1200,
		TargetWordCount:  8000,
		Authors:          []string{"A. Researcher"},
		Venue:            "NeurIPS",
	}

	ctx := p.Context()

	require.Equal(t, "p-1", ctx.ID)
	require.Equal(t, "Survey of Federated Learning", ctx.Title)
	require.Equal(t, 1200, ctx.CurrentWordCount)

	var nilPaper *Paper
	require.Nil(t, nilPaper.Context())
}

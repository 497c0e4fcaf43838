package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nsavkin/paperdesk/internal/client/models"
)

func TestStage_EmptyInput(t *testing.T) {
	s := NewStager()

	res := s.Stage(nil)

	require.NotNil(t, res.Accepted)
	require.NotNil(t, res.Rejected)
	require.Empty(t, res.Accepted)
	require.Empty(t, res.Rejected)
	require.Empty(t, s.Pending())
}

func TestStage_RejectsOversizedFile(t *testing.T) {
	s := NewStager()
	big := models.StagedFile{Name: "scan.pdf", Data: bytes.Repeat([]byte{0}, 12<<20)}

	res := s.Stage([]models.StagedFile{big})

	require.Empty(t, res.Accepted)
	require.Equal(t, []Rejection{{Name: "scan.pdf", Reason: RejectTooLarge}}, res.Rejected)
	require.Empty(t, s.Pending())
}

func TestStage_RejectsInvalidExtension(t *testing.T) {
	s := NewStager()

	res := s.Stage([]models.StagedFile{{Name: "thesis.docx", Data: []byte("x")}})

	require.Empty(t, res.Accepted)
	require.Equal(t, []Rejection{{Name: "thesis.docx", Reason: RejectInvalidType}}, res.Rejected)
}

func TestStage_MixedBatch(t *testing.T) {
	s := NewStager()

	res := s.Stage([]models.StagedFile{
		{Name: "notes.pdf", Data: []byte("%PDF")},
		{Name: "draft.txt", Data: []byte("text")},
		{Name: "image.png", Data: []byte("png")},
	})

	require.Len(t, res.Accepted, 2)
	require.Equal(t, models.MimePDF, res.Accepted[0].Category)
	require.Equal(t, models.MimeText, res.Accepted[1].Category)
	require.Equal(t, int64(4), res.Accepted[0].SizeBytes)
	require.Len(t, res.Rejected, 1)
	require.Len(t, s.Pending(), 2)
}

func TestUnstage(t *testing.T) {
	s := NewStager()
	s.Stage([]models.StagedFile{
		{Name: "a.pdf", Data: []byte("a")},
		{Name: "b.txt", Data: []byte("b")},
	})

	require.True(t, s.Unstage(0))
	pending := s.Pending()
	require.Len(t, pending, 1)
	require.Equal(t, "b.txt", pending[0].Name)

	require.False(t, s.Unstage(5))
	require.False(t, s.Unstage(-1))
}

func TestClear_DropsEverything(t *testing.T) {
	s := NewStager()
	s.Stage([]models.StagedFile{{Name: "a.pdf", Data: []byte("a")}})

	s.Clear()

	require.Empty(t, s.Pending())
	require.Empty(t, s.Describe())
}

func TestPending_ReturnsCopy(t *testing.T) {
	s := NewStager()
	s.Stage([]models.StagedFile{{Name: "a.pdf", Data: []byte("a")}})

	p := s.Pending()
	p[0].Name = "mutated.pdf"

	require.Equal(t, "a.pdf", s.Pending()[0].Name)
}

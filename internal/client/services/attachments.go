package services

import "github.com/nsavkin/paperdesk/internal/client/models"

// Rejection reasons reported by the stager. These are validated before any
// network call happens.
const (
	RejectInvalidType = "invalid-type"
	RejectTooLarge    = "too-large"
)

// Rejection names a file the stager refused and why.
type Rejection struct {
	Name   string
	Reason string
}

// StageResult reports the outcome of one staging call.
type StageResult struct {
	Accepted []models.Attachment
	Rejected []Rejection
}

// Stager validates and holds outbound files until the next send attempt.
// Staging is local and synchronous; the pending set is cleared after every
// dispatch, success or failure, so files are never silently re-uploaded.
type Stager struct {
	pending []models.StagedFile
}

func NewStager() *Stager {
	return &Stager{}
}

// Stage validates each file and appends the accepted ones to the pending
// set. Every rejection carries a reason the UI can show as-is.
func (s *Stager) Stage(files []models.StagedFile) StageResult {
	res := StageResult{Accepted: []models.Attachment{}, Rejected: []Rejection{}}

	for _, f := range files {
		cat, ok := models.CategoryForName(f.Name)
		if !ok {
			res.Rejected = append(res.Rejected, Rejection{Name: f.Name, Reason: RejectInvalidType})
			continue
		}
		if int64(len(f.Data)) > models.MaxAttachmentSize {
			res.Rejected = append(res.Rejected, Rejection{Name: f.Name, Reason: RejectTooLarge})
			continue
		}

		s.pending = append(s.pending, f)
		res.Accepted = append(res.Accepted, models.Attachment{
			Name:      f.Name,
			Category:  cat,
			SizeBytes: int64(len(f.Data)),
		})
	}

	return res
}

// Unstage removes one pending file by position.
func (s *Stager) Unstage(i int) bool {
	if i < 0 || i >= len(s.pending) {
		return false
	}
	s.pending = append(s.pending[:i], s.pending[i+1:]...)
	return true
}

// Pending returns a copy of the files queued for the next send.
func (s *Stager) Pending() []models.StagedFile {
	return append([]models.StagedFile(nil), s.pending...)
}

// Describe lists the pending files as attachment metadata for display.
func (s *Stager) Describe() []models.Attachment {
	out := make([]models.Attachment, 0, len(s.pending))
	for _, f := range s.pending {
		cat, _ := models.CategoryForName(f.Name)
		out = append(out, models.Attachment{Name: f.Name, Category: cat, SizeBytes: int64(len(f.Data))})
	}
	return out
}

// Clear drops the pending set.
func (s *Stager) Clear() {
	s.pending = nil
}

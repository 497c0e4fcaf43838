package services

import "errors"

var (
	// Session / transport flow control.
	ErrSendInFlight    = errors.New("a send is already in flight")
	ErrMessageNotFound = errors.New("message not found in this session")

	// Feedback.
	ErrAlreadyRecorded = errors.New("feedback already recorded")
	ErrNotActionable   = errors.New("message does not accept feedback")

	// Section merge.
	ErrNoActivePaper = errors.New("no active paper")
	ErrNotMergeable  = errors.New("message cannot be merged into a section")
	ErrMergeFailed   = errors.New("merge failed")
)

// Package services implements the assistant session core: settings
// resolution, attachment staging, message dispatch, history loading,
// response reconciliation, feedback recording and section merging.
//
// # Overview
//
// All state lives in a Session: an append-only transcript scoped to the
// active paper (or to no paper). Components are small structs around the
// api.Client interface so tests can substitute struct fakes:
//
//   - SettingsResolver: merges per-paper over account over built-in
//     defaults; re-run on every paper switch and before every send.
//   - Stager: validates and holds outbound files until the next send
//     attempt.
//   - Chat: dispatches one message at a time, choosing the wire encoding
//     from staged-file count, and reconciles the reply into the transcript.
//   - HistoryLoader: populates the transcript for a scope, discarding stale
//     loads (last-scope-wins) and synthesizing a welcome turn for empty
//     conversations.
//   - FeedbackRecorder: optimistic approve/reject with a warn-only
//     confirmation policy.
//   - SectionMerger: appends approved content into a paper section.
//
// # Error Handling
//
// User-visible conditions are sentinel errors matched with errors.Is:
// ErrSendInFlight, ErrMessageNotFound, ErrAlreadyRecorded, ErrNotActionable,
// ErrNoActivePaper, ErrNotMergeable, ErrMergeFailed. Transport-level
// failures never escape Chat.Send: they become an in-transcript assistant
// notice so the transcript stays a consistent append-only log.
package services

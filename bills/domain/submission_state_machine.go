// Package domain owns the state transitions of a bill submission.
package domain

import (
	"encore.dev/beta/errs"
)

// SubmissionState is where a bill submission sits between file selection and
// the final commit.
type SubmissionState string

const (
	SubmissionIdle          SubmissionState = "idle"
	SubmissionFileValidated SubmissionState = "file_validated"
	SubmissionUploading     SubmissionState = "uploading"
	SubmissionDraftReady    SubmissionState = "draft_ready"
	SubmissionCommitting    SubmissionState = "committing"
	SubmissionCommitted     SubmissionState = "committed"
)

// SubmissionStateMachine validates the transitions of a single submission.
// Unlike a persisted state machine there is no locking here: the submission
// belongs to one workflow instance and is only mutated between the two store
// calls, never concurrently.
type SubmissionStateMachine struct {
	state SubmissionState
}

// NewSubmissionStateMachine creates an idle submission.
func NewSubmissionStateMachine() *SubmissionStateMachine {
	return &SubmissionStateMachine{state: SubmissionIdle}
}

// State returns the current submission state.
func (sm *SubmissionStateMachine) State() SubmissionState {
	return sm.state
}

// TransitionToFileValidated records that the selected file passed the local
// extension check.
func (sm *SubmissionStateMachine) TransitionToFileValidated() error {
	if sm.state != SubmissionIdle && sm.state != SubmissionFileValidated {
		return &errs.Error{
			Code:    errs.InvalidArgument,
			Message: "submission must be idle to validate a file",
		}
	}
	sm.state = SubmissionFileValidated
	return nil
}

// TransitionToUploading starts the supporting document upload.
func (sm *SubmissionStateMachine) TransitionToUploading() error {
	if sm.state != SubmissionIdle && sm.state != SubmissionFileValidated {
		return &errs.Error{
			Code:    errs.InvalidArgument,
			Message: "submission must have a validated file to start an upload",
		}
	}
	sm.state = SubmissionUploading
	return nil
}

// TransitionToDraftReady records a completed upload.
func (sm *SubmissionStateMachine) TransitionToDraftReady() error {
	if sm.state != SubmissionUploading {
		return &errs.Error{
			Code:    errs.InvalidArgument,
			Message: "submission must be uploading to become draft ready",
		}
	}
	sm.state = SubmissionDraftReady
	return nil
}

// TransitionToCommitting starts the final commit. A submission without a
// prior upload is let through: whether a file-less bill is acceptable is the
// caller's responsibility, not enforced here.
func (sm *SubmissionStateMachine) TransitionToCommitting() error {
	if sm.state == SubmissionUploading || sm.state == SubmissionCommitting || sm.state == SubmissionCommitted {
		return &errs.Error{
			Code:    errs.InvalidArgument,
			Message: "submission has an operation in flight or is already committed",
		}
	}
	sm.state = SubmissionCommitting
	return nil
}

// TransitionToCommitted records a successful commit. Committed is terminal.
func (sm *SubmissionStateMachine) TransitionToCommitted() error {
	if sm.state != SubmissionCommitting {
		return &errs.Error{
			Code:    errs.InvalidArgument,
			Message: "submission must be committing to complete",
		}
	}
	sm.state = SubmissionCommitted
	return nil
}

// Reset returns an in-flight submission to idle after a failed upload or
// commit.
func (sm *SubmissionStateMachine) Reset() error {
	if sm.state != SubmissionUploading && sm.state != SubmissionCommitting {
		return &errs.Error{
			Code:    errs.InvalidArgument,
			Message: "only an in-flight submission can be reset",
		}
	}
	sm.state = SubmissionIdle
	return nil
}

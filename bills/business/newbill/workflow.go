// Package newbill drives a bill-creation session from file selection through
// the final commit.
package newbill

import (
	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"encore.app/bills/domain"
	"encore.app/bills/model"
	"encore.app/bills/navigation"
	"encore.app/bills/store"
)

// ErrInvalidFileType is returned, and rendered verbatim by the caller, when
// the selected file fails the extension check.
var ErrInvalidFileType = &errs.Error{
	Code:    errs.InvalidArgument,
	Message: "Invalid file type. Only .png, .jpg, .jpeg are allowed",
}

// Workflow owns one bill submission: it validates the selected file, uploads
// it to open a draft record, and commits the final record. Its draft is
// either fully populated or fully cleared, never in between. An instance
// belongs to a single user session and issues at most one upload and one
// commit at a time, so it needs no locking.
type Workflow struct {
	instanceID string
	user       model.User
	billStore  store.BillStore
	nav        navigation.Navigator
	submission *domain.SubmissionStateMachine
	draft      model.UploadDraft
}

// NewWorkflow creates an idle workflow acting on behalf of user. The session
// identity is captured here once; the workflow never re-reads ambient state
// mid-operation.
func NewWorkflow(user model.User, billStore store.BillStore, nav navigation.Navigator) *Workflow {
	return &Workflow{
		instanceID: uuid.NewString(),
		user:       user,
		billStore:  billStore,
		nav:        nav,
		submission: domain.NewSubmissionStateMachine(),
	}
}

// InstanceID identifies this workflow instance in logs.
func (w *Workflow) InstanceID() string {
	return w.instanceID
}

// Draft returns a copy of the current upload draft.
func (w *Workflow) Draft() model.UploadDraft {
	return w.draft
}

// State returns the current submission state.
func (w *Workflow) State() domain.SubmissionState {
	return w.submission.State()
}

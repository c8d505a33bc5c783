package bills

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/bills/model"
)

type UploadBillFileRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	UserEmail      string `header:"X-User-Email" json:"-" validate:"required,email"`

	FileName string `json:"fileName" validate:"required,max=255"`
	Content  []byte `json:"content" validate:"required"`
}

type UploadBillFileResponse struct {
	BillID   string `json:"billId"`
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
}

// UploadBillFile validates the selected receipt file and uploads it to the
// record store, opening a draft bill for the calling user.
//
//encore:api public path=/v1/bills/files method=POST tag:idempotency
func (s *Service) UploadBillFile(ctx context.Context, req *UploadBillFileRequest) (*UploadBillFileResponse, error) {
	user := model.User{Type: model.UserTypeEmployee, Email: req.UserEmail}
	sub := s.submissionFor(user)

	if err := sub.workflow.SelectFile(ctx, req.FileName, req.Content); err != nil {
		rlog.Error("failed to upload bill file", "user", req.UserEmail, "instance_id", sub.workflow.InstanceID(), "error", err)
		return nil, err
	}

	draft := sub.workflow.Draft()
	if !draft.Populated() {
		return nil, &errs.Error{Code: errs.Internal, Message: "upload left no draft"}
	}

	return &UploadBillFileResponse{
		BillID:   *draft.BillID,
		FileURL:  *draft.FileURL,
		FileName: *draft.FileName,
	}, nil
}

// Validate implements validation for UploadBillFileRequest
func (r *UploadBillFileRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

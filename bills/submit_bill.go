package bills

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/bills/business/newbill"
	"encore.app/bills/model"
)

type SubmitBillRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	UserEmail      string `header:"X-User-Email" json:"-" validate:"required,email"`

	Type       string  `json:"type" validate:"required,max=100"`
	Name       string  `json:"name" validate:"required,max=255"`
	Amount     float64 `json:"amount" validate:"gt=0"`
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	VAT        string  `json:"vat"`
	Pct        int     `json:"pct" validate:"min=0,max=100"`
	Commentary string  `json:"commentary" validate:"max=1000"`
}

type SubmitBillResponse struct {
	RedirectTo string `json:"redirectTo"`
}

// SubmitBill commits the calling user's draft bill with the submitted form
// data and reports where the client should navigate next.
//
//encore:api public path=/v1/bills/submit method=POST tag:idempotency
func (s *Service) SubmitBill(ctx context.Context, req *SubmitBillRequest) (*SubmitBillResponse, error) {
	user := model.User{Type: model.UserTypeEmployee, Email: req.UserEmail}
	sub := s.submissionFor(user)

	form := newbill.BillForm{
		Type:       req.Type,
		Name:       req.Name,
		Amount:     req.Amount,
		Date:       req.Date,
		VAT:        req.VAT,
		Pct:        req.Pct,
		Commentary: req.Commentary,
	}

	if err := sub.workflow.Submit(ctx, form); err != nil {
		rlog.Error("failed to submit bill", "user", req.UserEmail, "instance_id", sub.workflow.InstanceID(), "error", err)
		return nil, err
	}

	redirect := sub.nav.LastPath()
	s.dropSubmission(req.UserEmail)

	return &SubmitBillResponse{RedirectTo: redirect}, nil
}

// Validate implements validation for SubmitBillRequest
func (r *SubmitBillRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

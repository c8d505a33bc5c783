package bills

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/bills/model"
)

type ListBillsRequest struct {
	UserEmail string `header:"X-User-Email" validate:"required,email"`
}

type ListBillsResponse struct {
	Bills []model.DisplayBill `json:"bills"`
}

// ListBills returns every bill from the record store, formatted for display
// and ordered by date descending.
//
//encore:api public method=GET path=/v1/bills
func (s *Service) ListBills(ctx context.Context, req *ListBillsRequest) (*ListBillsResponse, error) {
	bills, err := s.listing.Fetch(ctx)
	if err != nil {
		rlog.Error("failed to list bills", "user", req.UserEmail, "error", err)
		return nil, err
	}

	return &ListBillsResponse{Bills: bills}, nil
}

// Validate implements validation for ListBillsRequest
func (r *ListBillsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

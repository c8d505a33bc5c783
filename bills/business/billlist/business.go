package billlist

import (
	"context"

	"encore.app/bills/model"
	"encore.app/bills/store"
)

// Business produces the sorted, display-ready bill listing for the current
// session.
type Business interface {
	Fetch(ctx context.Context) ([]model.DisplayBill, error)
}

type business struct {
	billStore store.BillStore
}

// NewBusiness creates the listing pipeline on top of the given store.
func NewBusiness(billStore store.BillStore) Business {
	return &business{billStore: billStore}
}

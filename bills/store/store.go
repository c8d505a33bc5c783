// Package store defines the resource-collection contract the bill components
// depend on. The concrete implementation talks to the remote record store;
// tests substitute a generated mock.
package store

import (
	"context"
	"fmt"

	"encore.app/bills/model"
)

// BillStore is the store collaborator for the bills collection.
type BillStore interface {
	// List returns every bill record visible to the current session.
	List(ctx context.Context) ([]model.BillRecord, error)

	// Create uploads a supporting document and opens a draft record for it.
	Create(ctx context.Context, params CreateParams) (CreateResult, error)

	// Update merges patch into the record identified by billID and returns
	// the updated record.
	Update(ctx context.Context, billID string, patch UpdatePatch) (model.BillRecord, error)
}

// CreateParams carries the supporting document for a draft record.
type CreateParams struct {
	Email    string
	FileName string
	Data     []byte
}

// CreateResult is the store's response to a successful upload: the storage
// key of the uploaded object, the URL it is reachable under, and the id of
// the draft record opened for it.
type CreateResult struct {
	Key     string `json:"key"`
	FileURL string `json:"fileUrl"`
	BillID  string `json:"billId"`
}

// UpdatePatch carries the final record fields committed onto a draft.
type UpdatePatch struct {
	Email      string  `json:"email"`
	Type       string  `json:"type"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	VAT        string  `json:"vat"`
	Pct        int     `json:"pct"`
	Commentary string  `json:"commentary"`
	FileURL    string  `json:"fileUrl"`
	FileName   string  `json:"fileName"`
	Status     string  `json:"status"`
}

// TransportError is a store-level failure carrying the upstream status code.
// Callers render its message verbatim and never branch on the code.
type TransportError struct {
	Status int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Erreur %d", e.Status)
}

package newbill

import (
	"context"

	"encore.dev/rlog"

	"encore.app/bills/model"
	"encore.app/bills/navigation"
	"encore.app/bills/store"
)

// BillForm carries the remaining bill fields entered by the user for the
// final commit.
type BillForm struct {
	Type       string
	Name       string
	Amount     float64
	Date       string
	VAT        string
	Pct        int
	Commentary string
}

// Submit commits the final record for the current draft: the form fields are
// merged with the uploaded file's URL and name, the status is set to pending,
// and the record identified by the draft's bill id is updated. On success the
// workflow navigates to the bills view and is terminal. On commit failure the
// draft is cleared before the store's error is returned; the remote draft
// from the earlier upload is left as-is, with no compensating deletion.
//
// Submitting without a prior successful upload is not blocked here; the
// patch then carries empty file fields and the caller owns the consequences.
func (w *Workflow) Submit(ctx context.Context, form BillForm) error {
	if err := w.submission.TransitionToCommitting(); err != nil {
		return err
	}

	var billID, fileURL, fileName string
	if w.draft.BillID != nil {
		billID = *w.draft.BillID
	}
	if w.draft.FileURL != nil {
		fileURL = *w.draft.FileURL
	}
	if w.draft.FileName != nil {
		fileName = *w.draft.FileName
	}

	_, err := w.billStore.Update(ctx, billID, store.UpdatePatch{
		Email:      w.user.Email,
		Type:       form.Type,
		Name:       form.Name,
		Amount:     form.Amount,
		Date:       form.Date,
		VAT:        form.VAT,
		Pct:        form.Pct,
		Commentary: form.Commentary,
		FileURL:    fileURL,
		FileName:   fileName,
		Status:     string(model.BillStatusPending),
	})
	if err != nil {
		w.resetDraft()
		rlog.Error("bill commit failed", "instance", w.instanceID, "bill_id", billID, "error", err)
		return err
	}

	if err := w.submission.TransitionToCommitted(); err != nil {
		return err
	}

	w.nav.Navigate(navigation.BillsPath)
	return nil
}

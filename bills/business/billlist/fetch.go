package billlist

import (
	"context"
	"sort"

	"encore.app/bills/format"
	"encore.app/bills/model"
)

// Fetch lists the raw bill records and converts them into a sorted,
// display-ready sequence. A record whose date or status cannot be formatted
// keeps its raw values; one bad record never drops the rest of the listing,
// and no record is dropped silently. Store failures are returned unchanged
// for the caller to render, with no retry.
func (b *business) Fetch(ctx context.Context) ([]model.DisplayBill, error) {
	records, err := b.billStore.List(ctx)
	if err != nil {
		return nil, err
	}

	displays := make([]model.DisplayBill, len(records))
	for i, record := range records {
		displays[i] = toDisplayBill(record)
	}

	// Order by the raw ISO date, most recent first. Lexicographic order on
	// YYYY-MM-DD is chronological for well-formed dates and deterministic
	// for malformed ones.
	sort.SliceStable(displays, func(i, j int) bool {
		return displays[i].RawDate > displays[j].RawDate
	})

	return displays, nil
}

// toDisplayBill formats one record for display, falling back to the raw
// date/status values when formatting fails.
func toDisplayBill(record model.BillRecord) model.DisplayBill {
	display := model.DisplayBill{
		ID:         record.ID,
		Email:      record.Email,
		Type:       record.Type,
		Name:       record.Name,
		Amount:     record.Amount,
		Date:       record.Date,
		RawDate:    record.Date,
		VAT:        record.VAT,
		Pct:        record.Pct,
		Commentary: record.Commentary,
		FileURL:    record.FileURL,
		FileName:   record.FileName,
		Status:     record.Status,
	}

	if formatted, err := format.Date(record.Date); err == nil {
		display.Date = formatted
	}
	if label, err := format.Status(record.Status); err == nil {
		display.Status = label
	}

	return display
}

package model

type BillStatus string

const (
	BillStatusPending  BillStatus = "pending"
	BillStatusAccepted BillStatus = "accepted"
	BillStatusRefused  BillStatus = "refused"
)

// BillRecord is the canonical record shape returned by the remote store.
// Date stays a raw ISO string (YYYY-MM-DD) rather than a time.Time: the store
// may hand back malformed values, and those records still have to flow through
// the listing pipeline unchanged.
type BillRecord struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Type       string  `json:"type"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	VAT        string  `json:"vat,omitempty"`
	Pct        int     `json:"pct,omitempty"`
	Commentary string  `json:"commentary,omitempty"`
	FileURL    string  `json:"fileUrl"`
	FileName   string  `json:"fileName"`
	Status     string  `json:"status"`
}

// DisplayBill is the view-ready projection of a BillRecord: Date holds the
// localized display string and Status the display label. For a malformed
// record both keep the raw stored values. RawDate always carries the stored
// ISO date and is what the listing is ordered by; it stays off the wire.
type DisplayBill struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Type       string  `json:"type"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	RawDate    string  `json:"-"`
	VAT        string  `json:"vat,omitempty"`
	Pct        int     `json:"pct,omitempty"`
	Commentary string  `json:"commentary,omitempty"`
	FileURL    string  `json:"fileUrl"`
	FileName   string  `json:"fileName"`
	Status     string  `json:"status"`
}

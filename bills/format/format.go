// Package format renders stored bill values into the display strings the
// expense tables show. Both functions return an error on malformed input so
// the listing pipeline can fall back to the raw stored value instead of
// dropping the record.
package format

import (
	"fmt"
	"time"

	"encore.app/bills/model"
)

// frenchMonths holds the three-letter display abbreviations. Juin and juillet
// collapse to the same abbreviation; that matches the historical table output.
var frenchMonths = [12]string{
	"Jan", "Fév", "Mar", "Avr", "Mai", "Jui",
	"Jui", "Aoû", "Sep", "Oct", "Nov", "Déc",
}

// Date renders an ISO calendar date as its display string,
// e.g. "2004-04-04" → "4 Avr. 04".
func Date(raw string) (string, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", raw, err)
	}
	return fmt.Sprintf("%d %s. %s", t.Day(), frenchMonths[t.Month()-1], t.Format("06")), nil
}

// Status maps a stored bill status to its display label.
func Status(raw string) (string, error) {
	switch model.BillStatus(raw) {
	case model.BillStatusPending:
		return "En attente", nil
	case model.BillStatusAccepted:
		return "Accepté", nil
	case model.BillStatusRefused:
		return "Refused", nil
	}
	return "", fmt.Errorf("unknown bill status %q", raw)
}

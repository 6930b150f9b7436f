// Package sheets defines the payment ledger: an append-only record of fees
// received, one row per contact and month.
package sheets

import (
	"context"
	"time"

	"addressbook/internal/core"
)

// Header is the first row of a ledger sheet.
var Header = []string{"Timestamp", "Event ID", "Contact ID", "Name", "Class", "Month", "Fee"}

// LedgerEntry is one ledger row.
type LedgerEntry struct {
	RecordedAt  time.Time
	EventID     string
	ContactID   string
	ContactName string
	ClassID     string
	Month       core.MonthPaid
	Fee         core.Money
}

// Ports for outbound adapters.
type (
	LedgerWriter interface {
		// AppendPayment records every month of ev and returns a reference to
		// the written rows.
		AppendPayment(ctx context.Context, ev core.PaymentEvent) (ref string, err error)
	}

	LedgerReader interface {
		ListPayments(ctx context.Context) ([]LedgerEntry, error)
	}

	Ledger interface {
		LedgerWriter
		LedgerReader
	}
)

// EntriesFor expands ev into one entry per month.
func EntriesFor(ev core.PaymentEvent) []LedgerEntry {
	out := make([]LedgerEntry, 0, len(ev.Months))
	for _, m := range ev.Months {
		out = append(out, LedgerEntry{
			RecordedAt:  ev.OccurredAt.UTC(),
			EventID:     ev.ID.String(),
			ContactID:   ev.ContactID.String(),
			ContactName: string(ev.ContactName),
			ClassID:     string(ev.ClassID),
			Month:       m,
			Fee:         ev.Fees,
		})
	}
	return out
}

// Row renders e in Header column order.
func (e LedgerEntry) Row() []any {
	return []any{
		e.RecordedAt.Format(time.RFC3339),
		e.EventID,
		e.ContactID,
		e.ContactName,
		e.ClassID,
		string(e.Month),
		e.Fee.Amount(),
	}
}

// Package memory is an in-process payment ledger for local runs and tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"addressbook/internal/core"
	"addressbook/internal/sheets"
)

type Ledger struct {
	mu      sync.Mutex
	entries []sheets.LedgerEntry
}

var _ sheets.Ledger = (*Ledger)(nil)

func NewLedger() *Ledger {
	return &Ledger{}
}

// AppendPayment stores the event rows and returns a synthetic row range.
func (l *Ledger) AppendPayment(_ context.Context, ev core.PaymentEvent) (string, error) {
	rows := sheets.EntriesFor(ev)
	if len(rows) == 0 {
		return "", fmt.Errorf("payment %s has no months", ev.ID)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	first := len(l.entries) + 1
	l.entries = append(l.entries, rows...)
	return fmt.Sprintf("mem:%d-%d", first, len(l.entries)), nil
}

func (l *Ledger) ListPayments(_ context.Context) ([]sheets.LedgerEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]sheets.LedgerEntry(nil), l.entries...), nil
}

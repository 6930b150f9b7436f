package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"addressbook/internal/amqp"
	"addressbook/internal/cache"
	"addressbook/internal/metrics"
	"addressbook/internal/sheets"
)

// LedgerWorker appends consumed payment events to the payment ledger.
// Redelivered events are recognised by id and written only once.
type LedgerWorker struct {
	ledger  sheets.LedgerWriter
	seen    *cache.Deduper
	metrics *metrics.Metrics
}

func NewLedgerWorker(ledger sheets.LedgerWriter, seen *cache.Deduper, m *metrics.Metrics) *LedgerWorker {
	return &LedgerWorker{ledger: ledger, seen: seen, metrics: m}
}

// HandlePaymentsMarked is an amqp.Handler. A returned error requeues the
// message; malformed events are acknowledged and dropped since no retry can
// fix them.
func (w *LedgerWorker) HandlePaymentsMarked(ctx context.Context, msg *amqp.PaymentsMarkedMessage) error {
	ev, err := msg.Event()
	if err != nil {
		slog.WarnContext(ctx, "Dropping invalid payment event",
			"event_id", msg.EventID,
			"error", err)
		w.metrics.ObserveEvent(metrics.EventInvalid)
		return nil
	}

	key := ev.ID.String()
	if !w.seen.FirstSeen(key) {
		slog.InfoContext(ctx, "Skipping duplicate payment event", "event_id", key)
		w.metrics.ObserveEvent(metrics.EventDuplicate)
		return nil
	}

	start := time.Now()
	ref, err := w.ledger.AppendPayment(ctx, ev)
	if err != nil {
		w.seen.Forget(key)
		w.metrics.ObserveEvent(metrics.EventFailed)
		return fmt.Errorf("append payment to ledger: %w", err)
	}
	w.metrics.ObserveLedgerAppend(len(ev.Months), time.Since(start))
	w.metrics.ObserveEvent(metrics.EventAppended)

	slog.InfoContext(ctx, "Recorded payment in ledger",
		"event_id", key,
		"contact_id", ev.ContactID,
		"contact_name", ev.ContactName,
		"months", len(ev.Months),
		"ledger_ref", ref)
	return nil
}

// WarmFromLedger marks every event already present in the ledger as seen,
// so events redelivered after a worker restart are not appended twice.
func (w *LedgerWorker) WarmFromLedger(ctx context.Context, reader sheets.LedgerReader) (int, error) {
	entries, err := reader.ListPayments(ctx)
	if err != nil {
		return 0, fmt.Errorf("list ledger payments: %w", err)
	}
	warmed := 0
	for _, e := range entries {
		if w.seen.FirstSeen(e.EventID) {
			warmed++
		}
	}
	slog.InfoContext(ctx, "Warmed dedupe cache from ledger",
		"rows", len(entries),
		"events", warmed)
	return warmed, nil
}

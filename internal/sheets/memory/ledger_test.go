package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"addressbook/internal/core"
)

func TestLedgerAppendAndList(t *testing.T) {
	ctx := context.Background()
	l := NewLedger()
	c := core.Contact{ID: uuid.New(), Name: "Carl Kurz", Fees: core.Money{Cents: 25000}, ClassID: "4A"}

	ref, err := l.AppendPayment(ctx, core.NewPaymentEvent(c, core.NewMonthSet("2024-01", "2024-02"), time.Now()))
	if err != nil || ref != "mem:1-2" {
		t.Fatalf("unexpected append: ref=%q err=%v", ref, err)
	}
	ref, err = l.AppendPayment(ctx, core.NewPaymentEvent(c, core.NewMonthSet("2024-03"), time.Now()))
	if err != nil || ref != "mem:3-3" {
		t.Fatalf("unexpected append: ref=%q err=%v", ref, err)
	}

	entries, err := l.ListPayments(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 || entries[0].Month != "2024-01" || entries[2].Month != "2024-03" {
		t.Fatalf("unexpected entries %+v", entries)
	}
	if entries[0].Fee.Cents != 25000 || entries[0].ContactName != "Carl Kurz" {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
}

func TestLedgerRejectsEmptyEvent(t *testing.T) {
	l := NewLedger()
	if _, err := l.AppendPayment(context.Background(), core.PaymentEvent{ID: uuid.New()}); err == nil {
		t.Fatal("expected error for event without months")
	}
}

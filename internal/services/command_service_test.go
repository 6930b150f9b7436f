package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"addressbook/internal/commands"
	"addressbook/internal/core"
	"addressbook/internal/log"
	"addressbook/internal/metrics"
	"addressbook/internal/model"
	"addressbook/internal/parser"
	"addressbook/internal/storage"
	"addressbook/internal/storage/memory"
	fixtures "addressbook/internal/testutil"
)

type fakePublisher struct {
	events []core.PaymentEvent
	err    error
	closed bool
}

func (f *fakePublisher) PublishPaymentsMarked(_ context.Context, ev core.PaymentEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, ev)
	return nil
}

func (f *fakePublisher) Close() error {
	f.closed = true
	return nil
}

type failingStore struct{ *memory.Store }

func (failingStore) Save(context.Context, []core.Contact) error {
	return errors.New("disk full")
}

func newService(t *testing.T, store storage.ContactStore, pub PaymentPublisher, m *metrics.Metrics) *CommandService {
	t.Helper()
	mdl, err := model.NewManager(nil)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	svc := NewCommandService(mdl, store, pub, m, log.New(log.Config{Output: io.Discard}))
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return svc
}

func TestExecuteMarkPaidSavesAndPublishes(t *testing.T) {
	ctx := context.Background()
	store := memory.New(fixtures.TypicalContacts())
	pub := &fakePublisher{}
	m := metrics.New(prometheus.NewRegistry())
	svc := newService(t, store, pub, m)

	res, err := svc.Execute(ctx, "markpaid 2 m/2024-01 m/2024-02")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.HasPrefix(res.Feedback, "Marked contact as paid: Benson Meier") {
		t.Fatalf("unexpected feedback %q", res.Feedback)
	}
	if store.Saves() != 1 {
		t.Fatalf("expected one save, got %d", store.Saves())
	}
	saved, _ := store.Load(ctx)
	if !saved[1].HasPaid("2024-02") {
		t.Fatal("stored snapshot does not include the new months")
	}
	if len(pub.events) != 1 || len(pub.events[0].Months) != 2 {
		t.Fatalf("unexpected published events %+v", pub.events)
	}
	if got := testutil.ToFloat64(m.MonthsMarkedTotal); got != 2 {
		t.Fatalf("months marked = %v, want 2", got)
	}
}

func TestExecuteRejectedCommandLeavesStoreAlone(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"duplicate month", "markpaid 1 m/2024-01", commands.ErrDuplicateMonth},
		{"invalid month", "markpaid 1 m/2024-14", commands.ErrInvalidMonthFormat},
		{"out of range", "markpaid 9 m/2024-02", commands.ErrIndexOutOfRange},
		{"unknown word", "frobnicate", parser.ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.New(fixtures.TypicalContacts())
			pub := &fakePublisher{}
			m := metrics.New(prometheus.NewRegistry())
			svc := newService(t, store, pub, m)

			_, err := svc.Execute(context.Background(), tt.line)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if store.Saves() != 0 || len(pub.events) != 0 {
				t.Fatalf("rejected command had side effects: saves=%d events=%d", store.Saves(), len(pub.events))
			}
		})
	}
}

func TestExecutePublishFailureDoesNotFailCommand(t *testing.T) {
	store := memory.New(fixtures.TypicalContacts())
	pub := &fakePublisher{err: errors.New("circuit breaker is open")}
	m := metrics.New(prometheus.NewRegistry())
	svc := newService(t, store, pub, m)

	if _, err := svc.Execute(context.Background(), "markpaid 3 m/2024-03"); err != nil {
		t.Fatalf("publish failure leaked into command result: %v", err)
	}
	if got := testutil.ToFloat64(m.PublishFailuresTotal); got != 1 {
		t.Fatalf("publish failures = %v, want 1", got)
	}
}

func TestExecuteWithoutPublisher(t *testing.T) {
	svc := newService(t, memory.New(fixtures.TypicalContacts()), nil, nil)
	if _, err := svc.Execute(context.Background(), "markpaid 3 m/2024-03"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}

func TestExecuteSaveFailureKeepsChange(t *testing.T) {
	store := failingStore{Store: memory.New(fixtures.TypicalContacts())}
	pub := &fakePublisher{}
	svc := newService(t, store, pub, nil)

	res, err := svc.Execute(context.Background(), "markpaid 2 m/2024-05")
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected save error, got %v", err)
	}
	if res.Feedback == "" {
		t.Fatal("result should still describe the change")
	}
	if !svc.Contacts()[1].HasPaid("2024-05") {
		t.Fatal("in-memory change should stand after a save failure")
	}
	if len(pub.events) != 0 {
		t.Fatal("nothing should be published when the save failed")
	}
}

func TestCloseClosesPublisher(t *testing.T) {
	pub := &fakePublisher{}
	svc := newService(t, memory.New(nil), pub, nil)
	if err := svc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !pub.closed {
		t.Fatal("publisher not closed")
	}
}

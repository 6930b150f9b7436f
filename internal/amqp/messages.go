package amqp

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"addressbook/internal/core"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PaymentsMarkedMessage announces that a contact paid for one or more months.
// It carries everything the ledger needs so the worker never reads the
// address book.
type PaymentsMarkedMessage struct {
	EventID     string    `json:"event_id"`
	ContactID   string    `json:"contact_id"`
	ContactName string    `json:"contact_name"`
	ClassID     string    `json:"class_id"`
	FeesCents   int64     `json:"fees_cents"`
	Months      []string  `json:"months"`
	OccurredAt  time.Time `json:"occurred_at"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewPaymentsMarkedMessage(ev core.PaymentEvent) *PaymentsMarkedMessage {
	months := make([]string, len(ev.Months))
	for i, m := range ev.Months {
		months[i] = string(m)
	}
	return &PaymentsMarkedMessage{
		EventID:     ev.ID.String(),
		ContactID:   ev.ContactID.String(),
		ContactName: string(ev.ContactName),
		ClassID:     string(ev.ClassID),
		FeesCents:   ev.Fees.Cents,
		Months:      months,
		OccurredAt:  ev.OccurredAt,
		Timestamp:   time.Now(),
	}
}

func (m *PaymentsMarkedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func PaymentsMarkedMessageFromJSON(data []byte) (*PaymentsMarkedMessage, error) {
	var msg PaymentsMarkedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Event converts the message back into a domain event, rejecting messages a
// ledger could not record.
func (m *PaymentsMarkedMessage) Event() (core.PaymentEvent, error) {
	id, err := uuid.Parse(m.EventID)
	if err != nil {
		return core.PaymentEvent{}, fmt.Errorf("event id: %w", err)
	}
	contactID, err := uuid.Parse(m.ContactID)
	if err != nil {
		return core.PaymentEvent{}, fmt.Errorf("contact id: %w", err)
	}
	if len(m.Months) == 0 {
		return core.PaymentEvent{}, errors.New("message has no months")
	}
	months := make([]core.MonthPaid, 0, len(m.Months))
	for _, raw := range m.Months {
		month, err := core.ParseMonthPaid(raw)
		if err != nil {
			return core.PaymentEvent{}, err
		}
		months = append(months, month)
	}
	fees := core.Money{Cents: m.FeesCents}
	if err := fees.Validate(); err != nil {
		return core.PaymentEvent{}, err
	}
	return core.PaymentEvent{
		ID:          id,
		ContactID:   contactID,
		ContactName: core.Name(m.ContactName),
		ClassID:     core.ClassID(m.ClassID),
		Fees:        fees,
		Months:      months,
		OccurredAt:  m.OccurredAt,
	}, nil
}

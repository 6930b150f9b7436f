package core

import (
	"time"

	"github.com/google/uuid"
)

// PaymentEvent records that a contact's fee was received for one or more
// months. It is emitted after a successful markpaid and fanned out to the
// payment ledger.
type PaymentEvent struct {
	ID          uuid.UUID
	ContactID   uuid.UUID
	ContactName Name
	ClassID     ClassID
	Fees        Money
	Months      []MonthPaid
	OccurredAt  time.Time
}

// NewPaymentEvent builds an event for the months just marked on c.
func NewPaymentEvent(c Contact, months MonthSet, now time.Time) PaymentEvent {
	return PaymentEvent{
		ID:          uuid.New(),
		ContactID:   c.ID,
		ContactName: c.Name,
		ClassID:     c.ClassID,
		Fees:        c.Fees,
		Months:      months.Sorted(),
		OccurredAt:  now.UTC(),
	}
}

// Total is the amount received across all months of the event.
func (e PaymentEvent) Total() Money {
	return e.Fees.Times(len(e.Months))
}

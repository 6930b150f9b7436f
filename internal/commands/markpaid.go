package commands

import (
	"fmt"
	"time"

	"addressbook/internal/core"
	"addressbook/internal/model"
)

const (
	MarkPaidWord  = "markpaid"
	MarkPaidUsage = MarkPaidWord + ": Marks the months paid for the contact identified " +
		"by the index number used in the displayed contact list. " +
		"Months already paid are kept; marking a month twice is rejected.\n" +
		"Parameters: INDEX (must be a positive integer) m/MONTH [m/MONTH]... (YYYY-MM)\n" +
		"Example: " + MarkPaidWord + " 1 m/2024-01 m/2024-02"

	MessageMarkPaidSuccess = "Marked contact as paid: %s"
	MessageDuplicateMonth  = "Duplicate month paid: %s"
	MessageInvalidMonth    = "Invalid month format: %s. " + core.MonthConstraint
)

// MarkPaidCommand adds months to the paid-month set of one displayed contact.
type MarkPaidCommand struct {
	Index  core.Index
	Months core.MonthSet
}

func NewMarkPaidCommand(index core.Index, months core.MonthSet) MarkPaidCommand {
	return MarkPaidCommand{Index: index, Months: months}
}

func (c MarkPaidCommand) Word() string { return MarkPaidWord }

// Execute checks the index, then the format of every month, then every month
// against those already paid. The first failure is reported and the model is
// left untouched. On success the filter is reset to show all contacts.
func (c MarkPaidCommand) Execute(m model.Model) (Result, error) {
	target, err := resolve(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	requested := c.Months.Sorted()
	for _, month := range requested {
		if err := month.Validate(); err != nil {
			return Result{}, newError(ErrInvalidMonthFormat, MessageInvalidMonth, month.Normalize())
		}
	}

	normalized := make([]core.MonthPaid, 0, len(requested))
	for _, month := range requested {
		if target.HasPaid(month) {
			return Result{}, newError(ErrDuplicateMonth, MessageDuplicateMonth, month.Normalize())
		}
		normalized = append(normalized, month.Normalize())
	}

	added := core.NewMonthSet(normalized...)
	marked := target.WithMonthsPaid(target.MonthsPaid.Union(added))
	if err := m.SetContact(target, marked); err != nil {
		return Result{}, err
	}
	m.UpdateFilteredContacts(model.ShowAll)

	event := core.NewPaymentEvent(marked, added, time.Now())
	return Result{
		Feedback: fmt.Sprintf(MessageMarkPaidSuccess, FormatMarkPaid(marked)),
		Mutated:  true,
		Payment:  &event,
	}, nil
}

// Equal compares index and month set; set order is irrelevant.
func (c MarkPaidCommand) Equal(other Command) bool {
	o, ok := other.(MarkPaidCommand)
	return ok && c.Index == o.Index && c.Months.Equal(o.Months)
}

func (c MarkPaidCommand) String() string {
	return fmt.Sprintf("MarkPaidCommand{index=%s, monthsPaid=%s}", c.Index, c.Months)
}

package commands

import (
	"fmt"

	"addressbook/internal/core"
	"addressbook/internal/model"
)

const (
	UnpaidWord  = "unpaid"
	UnpaidUsage = UnpaidWord + ": Lists the contacts that have not paid for the given month " +
		"and reports the outstanding amount.\n" +
		"Parameters: MONTH (YYYY-MM)\n" +
		"Example: " + UnpaidWord + " 2024-01"

	MessageUnpaidSuccess = "%d contacts have not paid for %s (outstanding %s)"
)

// UnpaidCommand filters the displayed list to contacts missing a month.
type UnpaidCommand struct {
	Month core.MonthPaid
}

func NewUnpaidCommand(month core.MonthPaid) UnpaidCommand {
	return UnpaidCommand{Month: month}
}

func (c UnpaidCommand) Word() string { return UnpaidWord }

func (c UnpaidCommand) Execute(m model.Model) (Result, error) {
	if err := c.Month.Validate(); err != nil {
		return Result{}, newError(ErrInvalidMonthFormat, MessageInvalidMonth, c.Month.Normalize())
	}
	month := c.Month.Normalize()
	summary := core.Summarize(m.Contacts(), month)
	m.UpdateFilteredContacts(model.HasNotPaid(month))
	return Result{Feedback: fmt.Sprintf(MessageUnpaidSuccess, summary.Unpaid, month, summary.Outstanding)}, nil
}

func (c UnpaidCommand) Equal(other Command) bool {
	o, ok := other.(UnpaidCommand)
	return ok && c.Month.Normalize() == o.Month.Normalize()
}

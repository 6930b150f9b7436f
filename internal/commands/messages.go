package commands

import (
	"fmt"
	"strings"

	"addressbook/internal/core"
)

const (
	MessageInvalidContactIndex = "The contact index provided is invalid"
	MessageContactsListed      = "%d contacts listed!"
	MessageUnknownCommand      = "Unknown command"
	MessageInvalidFormat       = "Invalid command format! \n%s"
)

// FormatContact renders every field of c on one line.
func FormatContact(c core.Contact) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; Phone: %s; Email: %s; Address: %s; Fees: %s; Class: %s; Months Paid: %s",
		c.Name, c.Phone, c.Email, c.Address, c.Fees, c.ClassID, c.MonthsPaid)
	if c.Tags.Len() > 0 {
		fmt.Fprintf(&b, "; Tags: %s", c.Tags)
	}
	return b.String()
}

// FormatMarkPaid renders the name and paid months of c.
func FormatMarkPaid(c core.Contact) string {
	return fmt.Sprintf("%s; Months Paid: %s", c.Name, c.MonthsPaid)
}

package commands

import (
	"fmt"

	"addressbook/internal/core"
	"addressbook/internal/model"
)

const (
	AddWord  = "add"
	AddUsage = AddWord + ": Adds a contact to the address book.\n" +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS f/FEES c/CLASS_ID [m/MONTH]... [t/TAG]...\n" +
		"Example: " + AddWord + " n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25 " +
		"f/200.00 c/3B m/2024-01 t/friends"

	MessageAddSuccess     = "New contact added: %s"
	MessageDuplicateAdded = "This contact already exists in the address book"
)

// AddCommand appends a new contact.
type AddCommand struct {
	Contact core.Contact
}

func NewAddCommand(c core.Contact) AddCommand {
	return AddCommand{Contact: c}
}

func (c AddCommand) Word() string { return AddWord }

func (c AddCommand) Execute(m model.Model) (Result, error) {
	if m.HasContact(c.Contact) {
		return Result{}, newError(ErrDuplicateContact, MessageDuplicateAdded)
	}
	if err := m.AddContact(c.Contact); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageAddSuccess, FormatContact(c.Contact)), Mutated: true}, nil
}

func (c AddCommand) Equal(other Command) bool {
	o, ok := other.(AddCommand)
	return ok && c.Contact.Equal(o.Contact)
}

package commands

import "addressbook/internal/model"

const (
	ListWord  = "list"
	ListUsage = ListWord + ": Lists all contacts.\nExample: " + ListWord

	MessageListSuccess = "Listed all contacts"
)

// ListCommand clears any filter.
type ListCommand struct{}

func (ListCommand) Word() string { return ListWord }

func (ListCommand) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredContacts(model.ShowAll)
	return Result{Feedback: MessageListSuccess}, nil
}

func (ListCommand) Equal(other Command) bool {
	_, ok := other.(ListCommand)
	return ok
}

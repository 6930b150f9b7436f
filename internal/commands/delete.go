package commands

import (
	"fmt"

	"addressbook/internal/core"
	"addressbook/internal/model"
)

const (
	DeleteWord  = "delete"
	DeleteUsage = DeleteWord + ": Deletes the contact identified by the index number used in the displayed contact list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + DeleteWord + " 1"

	MessageDeleteSuccess = "Deleted Contact: %s"
)

// DeleteCommand removes one displayed contact.
type DeleteCommand struct {
	Index core.Index
}

func NewDeleteCommand(index core.Index) DeleteCommand {
	return DeleteCommand{Index: index}
}

func (c DeleteCommand) Word() string { return DeleteWord }

func (c DeleteCommand) Execute(m model.Model) (Result, error) {
	target, err := resolve(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeleteContact(target); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageDeleteSuccess, FormatContact(target)), Mutated: true}, nil
}

func (c DeleteCommand) Equal(other Command) bool {
	o, ok := other.(DeleteCommand)
	return ok && c.Index == o.Index
}

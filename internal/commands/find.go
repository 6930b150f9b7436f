package commands

import (
	"fmt"
	"slices"

	"addressbook/internal/model"
)

const (
	FindWord  = "find"
	FindUsage = FindWord + ": Finds all contacts whose names contain any of " +
		"the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + FindWord + " alice bob charlie"
)

// FindCommand filters the displayed list by name keywords.
type FindCommand struct {
	Keywords []string
}

func NewFindCommand(keywords []string) FindCommand {
	return FindCommand{Keywords: keywords}
}

func (c FindCommand) Word() string { return FindWord }

func (c FindCommand) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredContacts(model.NameContainsKeywords(c.Keywords))
	return Result{Feedback: fmt.Sprintf(MessageContactsListed, len(m.FilteredContacts()))}, nil
}

func (c FindCommand) Equal(other Command) bool {
	o, ok := other.(FindCommand)
	return ok && slices.Equal(c.Keywords, o.Keywords)
}

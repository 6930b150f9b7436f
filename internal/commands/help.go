package commands

import (
	"strings"

	"addressbook/internal/model"
)

const (
	HelpWord  = "help"
	HelpUsage = HelpWord + ": Shows the usage of every command.\nExample: " + HelpWord

	ExitWord  = "exit"
	ExitUsage = ExitWord + ": Exits the program.\nExample: " + ExitWord

	MessageExit = "Exiting address book as requested ..."
)

// Usages lists the usage text of every command in display order.
var Usages = []string{AddUsage, DeleteUsage, ListUsage, FindUsage, MarkPaidUsage, UnpaidUsage, HelpUsage, ExitUsage}

type HelpCommand struct{}

func (HelpCommand) Word() string { return HelpWord }

func (HelpCommand) Execute(model.Model) (Result, error) {
	return Result{Feedback: strings.Join(Usages, "\n\n")}, nil
}

func (HelpCommand) Equal(other Command) bool {
	_, ok := other.(HelpCommand)
	return ok
}

type ExitCommand struct{}

func (ExitCommand) Word() string { return ExitWord }

func (ExitCommand) Execute(model.Model) (Result, error) {
	return Result{Feedback: MessageExit, Exit: true}, nil
}

func (ExitCommand) Equal(other Command) bool {
	_, ok := other.(ExitCommand)
	return ok
}

// Package commands implements the address book's user commands. Each command
// validates its input completely before it touches the model, so a failed
// command leaves the model unchanged.
package commands

import (
	"errors"
	"fmt"

	"addressbook/internal/core"
	"addressbook/internal/model"
)

// Command is a parsed unit of user intent.
type Command interface {
	Execute(m model.Model) (Result, error)
	// Word is the keyword that invokes the command, used for logs and metrics.
	Word() string
	Equal(other Command) bool
}

// Result is what a successful command reports back to the user.
type Result struct {
	Feedback string
	// Mutated is set when the contact list changed and must be persisted.
	Mutated bool
	// Exit asks the interactive shell to stop.
	Exit bool
	// Payment is set when months were marked as paid.
	Payment *core.PaymentEvent
}

var (
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrInvalidMonthFormat = core.ErrInvalidMonthFormat
	ErrDuplicateMonth     = errors.New("duplicate month")
	ErrDuplicateContact   = model.ErrDuplicateContact
)

// Error is a user-correctable command failure. Message is shown verbatim;
// Kind is one of the Err* sentinels for errors.Is checks.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// resolve looks up index in the displayed list.
func resolve(m model.Model, index core.Index) (core.Contact, error) {
	shown := m.FilteredContacts()
	if index.ZeroBased() >= len(shown) {
		return core.Contact{}, newError(ErrIndexOutOfRange, "%s: %d", MessageInvalidContactIndex, index.OneBased())
	}
	return shown[index.ZeroBased()], nil
}

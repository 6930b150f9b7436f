// Package parser turns a line of user input into a command.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"addressbook/internal/commands"
	"addressbook/internal/core"
)

var (
	ErrInvalidFormat  = errors.New("invalid command format")
	ErrUnknownCommand = errors.New("unknown command")
)

// Error is a parse failure. Message is shown to the user verbatim.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func invalidFormat(usage string) *Error {
	return &Error{Kind: ErrInvalidFormat, Message: fmt.Sprintf(commands.MessageInvalidFormat, usage)}
}

func invalidValue(err error) *Error {
	return &Error{Kind: ErrInvalidFormat, Message: err.Error()}
}

// Parse parses one command line.
func Parse(line string) (commands.Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, invalidFormat(commands.HelpUsage)
	}
	word, args, _ := strings.Cut(line, " ")
	args = " " + args

	switch word {
	case commands.AddWord:
		return parseAdd(args)
	case commands.DeleteWord:
		return parseDelete(args)
	case commands.ListWord:
		return commands.ListCommand{}, nil
	case commands.FindWord:
		return parseFind(args)
	case commands.MarkPaidWord:
		return parseMarkPaid(args)
	case commands.UnpaidWord:
		return parseUnpaid(args)
	case commands.HelpWord:
		return commands.HelpCommand{}, nil
	case commands.ExitWord:
		return commands.ExitCommand{}, nil
	default:
		return nil, &Error{Kind: ErrUnknownCommand, Message: commands.MessageUnknownCommand}
	}
}

func parseIndex(s string) (core.Index, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return core.Index{}, core.ErrNonPositiveIndex
	}
	return core.IndexFromOneBased(n)
}

// parseMarkPaid leaves month tokens unvalidated so the command reports
// malformed months with its own message.
func parseMarkPaid(args string) (commands.Command, error) {
	a := Tokenize(args, PrefixMonth)
	idx, err := parseIndex(a.Preamble)
	if err != nil {
		return nil, invalidFormat(commands.MarkPaidUsage)
	}
	raw := a.All(PrefixMonth)
	if len(raw) == 0 {
		return nil, invalidFormat(commands.MarkPaidUsage)
	}
	months := make([]core.MonthPaid, 0, len(raw))
	for _, r := range raw {
		months = append(months, core.MonthPaid(r))
	}
	return commands.NewMarkPaidCommand(idx, core.NewMonthSet(months...)), nil
}

func parseDelete(args string) (commands.Command, error) {
	idx, err := parseIndex(args)
	if err != nil {
		return nil, invalidFormat(commands.DeleteUsage)
	}
	return commands.NewDeleteCommand(idx), nil
}

func parseFind(args string) (commands.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(commands.FindUsage)
	}
	return commands.NewFindCommand(keywords), nil
}

func parseUnpaid(args string) (commands.Command, error) {
	fields := strings.Fields(args)
	if len(fields) != 1 {
		return nil, invalidFormat(commands.UnpaidUsage)
	}
	return commands.NewUnpaidCommand(core.MonthPaid(fields[0])), nil
}

func parseAdd(args string) (commands.Command, error) {
	single := []Prefix{PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixFees, PrefixClassID}
	a := Tokenize(args, append(single, PrefixMonth, PrefixTag)...)

	if a.Preamble != "" {
		return nil, invalidFormat(commands.AddUsage)
	}
	for _, p := range single {
		if _, ok := a.Value(p); !ok {
			return nil, invalidFormat(commands.AddUsage)
		}
	}
	if dup := a.Duplicated(single...); len(dup) > 0 {
		names := make([]string, len(dup))
		for i, p := range dup {
			names[i] = string(p)
		}
		return nil, &Error{
			Kind:    ErrInvalidFormat,
			Message: "Multiple values specified for the following single-valued field(s): " + strings.Join(names, " "),
		}
	}

	value := func(p Prefix) string {
		v, _ := a.Value(p)
		return v
	}
	fees, err := core.ParseMoney(value(PrefixFees))
	if err != nil {
		return nil, invalidValue(err)
	}

	months := make([]core.MonthPaid, 0, len(a.All(PrefixMonth)))
	for _, raw := range a.All(PrefixMonth) {
		m, err := core.ParseMonthPaid(raw)
		if err != nil {
			return nil, &Error{Kind: ErrInvalidFormat, Message: fmt.Sprintf(commands.MessageInvalidMonth, core.MonthPaid(raw).Normalize())}
		}
		months = append(months, m)
	}
	tags := make([]core.Tag, 0, len(a.All(PrefixTag)))
	for _, raw := range a.All(PrefixTag) {
		tags = append(tags, core.Tag(raw))
	}

	c := core.NewContact(core.Contact{
		Name:       core.Name(value(PrefixName)),
		Phone:      core.Phone(value(PrefixPhone)),
		Email:      core.Email(value(PrefixEmail)),
		Address:    core.Address(value(PrefixAddress)),
		Fees:       fees,
		ClassID:    core.ClassID(value(PrefixClassID)),
		MonthsPaid: core.NewMonthSet(months...),
		Tags:       core.NewSet(tags...),
	})
	if err := c.Validate(); err != nil {
		return nil, invalidValue(err)
	}
	return commands.NewAddCommand(c), nil
}

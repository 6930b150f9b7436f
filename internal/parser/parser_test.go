package parser_test

import (
	"errors"
	"strings"
	"testing"

	"addressbook/internal/commands"
	"addressbook/internal/core"
	"addressbook/internal/parser"
)

func mustIndex(t *testing.T, n int) core.Index {
	t.Helper()
	i, err := core.IndexFromOneBased(n)
	if err != nil {
		t.Fatal(err)
	}
	return i
}

func TestParseCommands(t *testing.T) {
	tests := []struct {
		line string
		want commands.Command
	}{
		{"markpaid 1 m/2024-01", commands.NewMarkPaidCommand(mustIndex(t, 1), core.NewMonthSet("2024-01"))},
		{"markpaid  2 m/2024-01 m/2024-02", commands.NewMarkPaidCommand(mustIndex(t, 2), core.NewMonthSet("2024-02", "2024-01"))},
		{"markpaid 1 m/2024-14", commands.NewMarkPaidCommand(mustIndex(t, 1), core.NewMonthSet("2024-14"))},
		{"markpaid 1 m/[2024-01]", commands.NewMarkPaidCommand(mustIndex(t, 1), core.NewMonthSet("[2024-01]"))},
		{"delete 3", commands.NewDeleteCommand(mustIndex(t, 3))},
		{"list", commands.ListCommand{}},
		{"find alice  bob", commands.NewFindCommand([]string{"alice", "bob"})},
		{"unpaid 2024-03", commands.NewUnpaidCommand("2024-03")},
		{"help", commands.HelpCommand{}},
		{"  exit  ", commands.ExitCommand{}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := parser.Parse(tt.line)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseInvalidFormat(t *testing.T) {
	tests := []struct {
		line  string
		usage string
	}{
		{"markpaid m/2024-01", commands.MarkPaidUsage},
		{"markpaid 0 m/2024-01", commands.MarkPaidUsage},
		{"markpaid -1 m/2024-01", commands.MarkPaidUsage},
		{"markpaid one m/2024-01", commands.MarkPaidUsage},
		{"markpaid 1", commands.MarkPaidUsage},
		{"delete", commands.DeleteUsage},
		{"delete x", commands.DeleteUsage},
		{"find", commands.FindUsage},
		{"unpaid", commands.UnpaidUsage},
		{"unpaid 2024-01 2024-02", commands.UnpaidUsage},
		{"add n/Amy p/123", commands.AddUsage},
		{"", commands.HelpUsage},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := parser.Parse(tt.line)
			if !errors.Is(err, parser.ErrInvalidFormat) {
				t.Fatalf("expected ErrInvalidFormat, got %v", err)
			}
			if !strings.HasPrefix(err.Error(), "Invalid command format!") || !strings.HasSuffix(err.Error(), tt.usage) {
				t.Fatalf("unexpected message %q", err.Error())
			}
		})
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := parser.Parse("frobnicate 1")
	if !errors.Is(err, parser.ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestParseAdd(t *testing.T) {
	cmd, err := parser.Parse("add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25 " +
		"f/200,50 c/3B m/[2024-01] t/friends t/owesMoney")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	add, ok := cmd.(commands.AddCommand)
	if !ok {
		t.Fatalf("expected AddCommand, got %T", cmd)
	}
	c := add.Contact
	if c.Name != "John Doe" || c.Phone != "98765432" || c.Address != "311, Clementi Ave 2, #02-25" {
		t.Fatalf("unexpected contact %+v", c)
	}
	if c.Fees.Cents != 20050 || c.ClassID != "3B" {
		t.Fatalf("unexpected fees/class %v %v", c.Fees, c.ClassID)
	}
	if !c.MonthsPaid.Equal(core.NewMonthSet("2024-01")) {
		t.Fatalf("months = %v", c.MonthsPaid)
	}
	if c.Tags.Len() != 2 || !c.Tags.Contains("owesMoney") {
		t.Fatalf("tags = %v", c.Tags)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("parsed contact invalid: %v", err)
	}
}

func TestParseAddRejectsBadValues(t *testing.T) {
	base := map[string]string{
		"n": "n/Amy Bee", "p": "p/85355255", "e": "e/amy@gmail.com",
		"a": "a/Jurong West", "f": "f/200", "c": "c/2A",
	}
	tests := []struct {
		name     string
		override map[string]string
		extra    string
		contains string
	}{
		{"bad phone", map[string]string{"p": "p/12"}, "", "phone"},
		{"bad email", map[string]string{"e": "e/amy"}, "", "email"},
		{"bad fees", map[string]string{"f": "f/-3"}, "", "fees"},
		{"bad class", map[string]string{"c": "c/3 B"}, "", "class"},
		{"bad month", nil, "m/2024-13", "Invalid month format: 2024-13"},
		{"bad tag", nil, "t/best friend", "tags"},
		{"repeated name", nil, "n/Bob", "Multiple values specified"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := []string{"add"}
			for _, k := range []string{"n", "p", "e", "a", "f", "c"} {
				v := base[k]
				if o, ok := tt.override[k]; ok {
					v = o
				}
				parts = append(parts, v)
			}
			if tt.extra != "" {
				parts = append(parts, tt.extra)
			}
			_, err := parser.Parse(strings.Join(parts, " "))
			if !errors.Is(err, parser.ErrInvalidFormat) {
				t.Fatalf("expected ErrInvalidFormat, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Fatalf("message %q does not contain %q", err.Error(), tt.contains)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	a := parser.Tokenize(" 1 m/2024-01 x/m/y m/ 2024-02 ", parser.PrefixMonth)
	if a.Preamble != "1" {
		t.Fatalf("preamble = %q", a.Preamble)
	}
	got := a.All(parser.PrefixMonth)
	if len(got) != 2 || got[0] != "2024-01 x/m/y" || got[1] != "2024-02" {
		t.Fatalf("values = %q", got)
	}
	if _, ok := a.Value(parser.PrefixTag); ok {
		t.Fatal("unexpected tag value")
	}
}

package core

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func validContact() Contact {
	return NewContact(Contact{
		Name:       "Alice Pauline",
		Phone:      "94351253",
		Email:      "alice@example.com",
		Address:    "123, Jurong West Ave 6, #08-111",
		Fees:       Money{Cents: 20000},
		ClassID:    "CS2103T",
		MonthsPaid: NewMonthSet("2024-01"),
		Tags:       NewSet[Tag]("friends"),
	})
}

func TestContactValidate(t *testing.T) {
	if err := validContact().Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		edit func(*Contact)
		want error
	}{
		{"no id", func(c *Contact) { c.ID = uuid.Nil }, ErrMissingIdentity},
		{"blank name", func(c *Contact) { c.Name = "  " }, ErrEmptyName},
		{"name with symbols", func(c *Contact) { c.Name = "Alice*" }, ErrInvalidName},
		{"short phone", func(c *Contact) { c.Phone = "12" }, ErrInvalidPhone},
		{"phone with letters", func(c *Contact) { c.Phone = "9435a253" }, ErrInvalidPhone},
		{"email without domain", func(c *Contact) { c.Email = "alice@" }, ErrInvalidEmail},
		{"email without dot", func(c *Contact) { c.Email = "alice@example" }, ErrInvalidEmail},
		{"blank address", func(c *Contact) { c.Address = "" }, ErrEmptyAddress},
		{"zero fees", func(c *Contact) { c.Fees = Money{} }, ErrInvalidAmount},
		{"class with space", func(c *Contact) { c.ClassID = "CS 2103" }, ErrInvalidClassID},
		{"bad month", func(c *Contact) { c.MonthsPaid = NewMonthSet("2024-13") }, ErrInvalidMonthFormat},
		{"bad tag", func(c *Contact) { c.Tags = NewSet[Tag]("best friend") }, ErrInvalidTag},
	}
	for _, tc := range cases {
		c := validContact()
		tc.edit(&c)
		if err := c.Validate(); !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestContactEqual(t *testing.T) {
	a := validContact()
	b := a
	b.MonthsPaid = NewMonthSet("2024-01")
	if !a.Equal(b) {
		t.Fatalf("contacts with equal sets should be equal")
	}

	b = a.WithMonthsPaid(NewMonthSet("2024-01", "2024-02"))
	if a.Equal(b) {
		t.Fatalf("contacts with different months should differ")
	}
	if a.MonthsPaid.Len() != 1 {
		t.Fatalf("WithMonthsPaid must not modify the original, got %v", a.MonthsPaid)
	}

	c := a
	c.ID = uuid.New()
	if a.Equal(c) {
		t.Fatalf("contacts with different ids should differ")
	}
	if !a.IsSameContact(c) {
		t.Fatalf("same name and phone should be the same contact")
	}
}

func TestHasPaid(t *testing.T) {
	c := validContact()
	if !c.HasPaid("2024-01") || !c.HasPaid("[2024-01]") {
		t.Fatalf("expected 2024-01 to be paid")
	}
	if c.HasPaid("2024-02") {
		t.Fatalf("did not expect 2024-02 to be paid")
	}
}

func TestSummarize(t *testing.T) {
	a := validContact()
	b := validContact().WithMonthsPaid(NewMonthSet())
	b.Fees = Money{Cents: 15000}

	s := Summarize([]Contact{a, b}, "2024-01")
	if s.Paid != 1 || s.Unpaid != 1 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if s.Collected.Cents != 20000 || s.Outstanding.Cents != 15000 {
		t.Fatalf("unexpected totals: %+v", s)
	}
}

func TestNewPaymentEvent(t *testing.T) {
	c := validContact()
	ev := NewPaymentEvent(c, NewMonthSet("2024-03", "2024-02"), mustTime(t, "2024-03"))
	if ev.ContactID != c.ID || ev.ID == uuid.Nil {
		t.Fatalf("unexpected ids: %+v", ev)
	}
	if len(ev.Months) != 2 || ev.Months[0] != "2024-02" {
		t.Fatalf("months should be sorted: %v", ev.Months)
	}
	if ev.Total().Cents != 40000 {
		t.Fatalf("expected total 40000, got %d", ev.Total().Cents)
	}
}

// Package testutil provides contact fixtures shared by package tests.
package testutil

import (
	"github.com/google/uuid"

	"addressbook/internal/core"
)

// ContactBuilder builds contacts for tests, starting from a valid default.
type ContactBuilder struct {
	c core.Contact
}

// NewContactBuilder starts from Amy Bee with no paid months.
func NewContactBuilder() *ContactBuilder {
	return &ContactBuilder{c: core.Contact{
		ID:      uuid.MustParse("00000000-0000-4000-8000-0000000000a1"),
		Name:    "Amy Bee",
		Phone:   "85355255",
		Email:   "amy@gmail.com",
		Address: "123, Jurong West Ave 6, #08-111",
		Fees:    core.Money{Cents: 20000},
		ClassID: "2A",
	}}
}

func (b *ContactBuilder) WithID(id string) *ContactBuilder {
	b.c.ID = uuid.MustParse(id)
	return b
}

func (b *ContactBuilder) WithName(n string) *ContactBuilder {
	b.c.Name = core.Name(n)
	return b
}

func (b *ContactBuilder) WithPhone(p string) *ContactBuilder {
	b.c.Phone = core.Phone(p)
	return b
}

func (b *ContactBuilder) WithEmail(e string) *ContactBuilder {
	b.c.Email = core.Email(e)
	return b
}

func (b *ContactBuilder) WithAddress(a string) *ContactBuilder {
	b.c.Address = core.Address(a)
	return b
}

func (b *ContactBuilder) WithFees(cents int64) *ContactBuilder {
	b.c.Fees = core.Money{Cents: cents}
	return b
}

func (b *ContactBuilder) WithClassID(id string) *ContactBuilder {
	b.c.ClassID = core.ClassID(id)
	return b
}

func (b *ContactBuilder) WithMonthsPaid(months ...core.MonthPaid) *ContactBuilder {
	b.c.MonthsPaid = core.NewMonthSet(months...)
	return b
}

func (b *ContactBuilder) WithTags(tags ...core.Tag) *ContactBuilder {
	b.c.Tags = core.NewSet(tags...)
	return b
}

func (b *ContactBuilder) Build() core.Contact {
	return b.c
}

// TypicalContacts returns a fixed list of valid contacts. Alice has paid
// 2024-01; nobody else has paid anything.
func TypicalContacts() []core.Contact {
	return []core.Contact{
		NewContactBuilder().WithID("00000000-0000-4000-8000-000000000001").
			WithName("Alice Pauline").WithPhone("94351253").WithEmail("alice@example.com").
			WithAddress("123, Jurong West Ave 6, #08-111").WithFees(20000).WithClassID("3B").
			WithMonthsPaid("2024-01").WithTags("friends").Build(),
		NewContactBuilder().WithID("00000000-0000-4000-8000-000000000002").
			WithName("Benson Meier").WithPhone("98765432").WithEmail("johnd@example.com").
			WithAddress("311, Clementi Ave 2, #02-25").WithFees(18000).WithClassID("3B").
			WithTags("owesMoney", "friends").Build(),
		NewContactBuilder().WithID("00000000-0000-4000-8000-000000000003").
			WithName("Carl Kurz").WithPhone("95352563").WithEmail("heinz@example.com").
			WithAddress("wall street").WithFees(25000).WithClassID("4A").Build(),
		NewContactBuilder().WithID("00000000-0000-4000-8000-000000000004").
			WithName("Daniel Meier").WithPhone("87652533").WithEmail("cornelia@example.com").
			WithAddress("10th street").WithFees(25000).WithClassID("4A").WithTags("friends").Build(),
	}
}

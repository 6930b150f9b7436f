package storage

import (
	"fmt"

	"github.com/google/uuid"

	"addressbook/internal/core"
)

// Record is the serialised form of a contact shared by the file-based
// backends. Fees are kept as integer cents.
type Record struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email"`
	Address    string   `json:"address"`
	FeesCents  int64    `json:"feesCents"`
	ClassID    string   `json:"classId"`
	MonthsPaid []string `json:"monthsPaid"`
	Tags       []string `json:"tags,omitempty"`
}

func RecordFromContact(c core.Contact) Record {
	r := Record{
		ID:        c.ID.String(),
		Name:      string(c.Name),
		Phone:     string(c.Phone),
		Email:     string(c.Email),
		Address:   string(c.Address),
		FeesCents: c.Fees.Cents,
		ClassID:   string(c.ClassID),
	}
	r.MonthsPaid = make([]string, 0, c.MonthsPaid.Len())
	for _, m := range c.MonthsPaid.Sorted() {
		r.MonthsPaid = append(r.MonthsPaid, string(m))
	}
	for _, t := range c.Tags.Sorted() {
		r.Tags = append(r.Tags, string(t))
	}
	return r
}

// Contact converts r back and validates the result.
func (r Record) Contact() (core.Contact, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return core.Contact{}, fmt.Errorf("contact id %q: %w", r.ID, err)
	}
	months := make([]core.MonthPaid, 0, len(r.MonthsPaid))
	for _, raw := range r.MonthsPaid {
		m, err := core.ParseMonthPaid(raw)
		if err != nil {
			return core.Contact{}, fmt.Errorf("contact %s: %w", r.ID, err)
		}
		months = append(months, m)
	}
	tags := make([]core.Tag, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, core.Tag(t))
	}

	c := core.Contact{
		ID:         id,
		Name:       core.Name(r.Name),
		Phone:      core.Phone(r.Phone),
		Email:      core.Email(r.Email),
		Address:    core.Address(r.Address),
		Fees:       core.Money{Cents: r.FeesCents},
		ClassID:    core.ClassID(r.ClassID),
		MonthsPaid: core.NewMonthSet(months...),
		Tags:       core.NewSet(tags...),
	}
	if err := c.Validate(); err != nil {
		return core.Contact{}, fmt.Errorf("contact %s: %w", r.ID, err)
	}
	return c, nil
}

// Package memory keeps the contact list in process memory. It is used for
// demos and tests; nothing survives a restart.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"addressbook/internal/core"
	"addressbook/internal/storage"
)

type Store struct {
	mu       sync.Mutex
	contacts []core.Contact
	saves    int
}

var _ storage.ContactStore = (*Store)(nil)

func New(contacts []core.Contact) *Store {
	return &Store{contacts: append([]core.Contact(nil), contacts...)}
}

// NewWithSampleData returns a store seeded with SampleContacts.
func NewWithSampleData() *Store {
	return New(SampleContacts())
}

func (s *Store) Load(_ context.Context) ([]core.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Contact(nil), s.contacts...), nil
}

func (s *Store) Save(_ context.Context, contacts []core.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append([]core.Contact(nil), contacts...)
	s.saves++
	return nil
}

// Saves reports how many times Save was called.
func (s *Store) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// SampleContacts is the data a fresh demo address book starts with.
func SampleContacts() []core.Contact {
	sample := func(id, name, phone, email, address string, fees int64, class string, months []core.MonthPaid, tags ...core.Tag) core.Contact {
		return core.Contact{
			ID:         uuid.MustParse(id),
			Name:       core.Name(name),
			Phone:      core.Phone(phone),
			Email:      core.Email(email),
			Address:    core.Address(address),
			Fees:       core.Money{Cents: fees},
			ClassID:    core.ClassID(class),
			MonthsPaid: core.NewMonthSet(months...),
			Tags:       core.NewSet(tags...),
		}
	}
	return []core.Contact{
		sample("6f1c2a4e-8a57-4d0e-9b8e-1a0c3f5d7e01", "Alex Yeoh", "87438807", "alexyeoh@example.com",
			"Blk 30 Geylang Street 29, #06-40", 25000, "S3-Math", []core.MonthPaid{"2024-01", "2024-02"}, "friends"),
		sample("6f1c2a4e-8a57-4d0e-9b8e-1a0c3f5d7e02", "Bernice Yu", "99272758", "berniceyu@example.com",
			"Blk 30 Lorong 3 Serangoon Gardens, #07-18", 25000, "S3-Math", []core.MonthPaid{"2024-01"}, "colleagues", "friends"),
		sample("6f1c2a4e-8a57-4d0e-9b8e-1a0c3f5d7e03", "Charlotte Oliveiro", "93210283", "charlotte@example.com",
			"Blk 11 Ang Mo Kio Street 74, #11-04", 18000, "P6-Sci", nil, "neighbours"),
		sample("6f1c2a4e-8a57-4d0e-9b8e-1a0c3f5d7e04", "David Li", "91031282", "lidavid@example.com",
			"Blk 436 Serangoon Gardens Street 26, #16-43", 18000, "P6-Sci", []core.MonthPaid{"2024-02"}, "family"),
		sample("6f1c2a4e-8a57-4d0e-9b8e-1a0c3f5d7e05", "Irfan Ibrahim", "92492021", "irfan@example.com",
			"Blk 47 Tampines Street 20, #17-35", 30000, "J1-Phys", nil, "classmates"),
		sample("6f1c2a4e-8a57-4d0e-9b8e-1a0c3f5d7e06", "Roy Balakrishnan", "92624417", "royb@example.com",
			"Blk 45 Aljunied Street 85, #11-31", 30000, "J1-Phys", []core.MonthPaid{"2024-01", "2024-02", "2024-03"}, "colleagues"),
	}
}

// Package model holds the address book's in-memory state: the full contact
// list and the filter that decides which contacts are currently displayed.
//
// A Manager is owned by a single command loop and is not safe for concurrent use.
package model

import (
	"errors"

	"addressbook/internal/core"
)

var (
	ErrDuplicateContact = errors.New("this contact already exists in the address book")
	ErrContactNotFound  = errors.New("contact not found in the address book")
)

// Predicate selects which contacts are displayed.
type Predicate func(core.Contact) bool

// ShowAll is the predicate that displays every contact.
var ShowAll Predicate = func(core.Contact) bool { return true }

// Model is what commands read and write. Commands never touch persistence.
type Model interface {
	// Contacts returns a copy of the full contact list in insertion order.
	Contacts() []core.Contact
	HasContact(c core.Contact) bool
	AddContact(c core.Contact) error
	DeleteContact(target core.Contact) error
	// SetContact replaces the contact equal in value to target with edited.
	SetContact(target, edited core.Contact) error
	// ResetContacts replaces the whole list, e.g. after loading from storage.
	ResetContacts(contacts []core.Contact) error

	// FilteredContacts returns the displayed contacts; indices typed by the
	// user are resolved against this list.
	FilteredContacts() []core.Contact
	UpdateFilteredContacts(p Predicate)
}

// Manager is the default Model backed by a slice.
type Manager struct {
	contacts []core.Contact
	filter   Predicate
}

var _ Model = (*Manager)(nil)

// NewManager builds a model holding contacts with the show-all filter applied.
func NewManager(contacts []core.Contact) (*Manager, error) {
	m := &Manager{filter: ShowAll}
	if err := m.ResetContacts(contacts); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) Contacts() []core.Contact {
	return append([]core.Contact(nil), m.contacts...)
}

func (m *Manager) HasContact(c core.Contact) bool {
	for _, existing := range m.contacts {
		if existing.IsSameContact(c) {
			return true
		}
	}
	return false
}

func (m *Manager) AddContact(c core.Contact) error {
	if m.HasContact(c) {
		return ErrDuplicateContact
	}
	m.contacts = append(m.contacts, c)
	m.filter = ShowAll
	return nil
}

func (m *Manager) DeleteContact(target core.Contact) error {
	i := m.indexOf(target)
	if i < 0 {
		return ErrContactNotFound
	}
	m.contacts = append(m.contacts[:i:i], m.contacts[i+1:]...)
	return nil
}

func (m *Manager) SetContact(target, edited core.Contact) error {
	i := m.indexOf(target)
	if i < 0 {
		return ErrContactNotFound
	}
	for j, existing := range m.contacts {
		if j != i && existing.IsSameContact(edited) {
			return ErrDuplicateContact
		}
	}
	m.contacts[i] = edited
	return nil
}

func (m *Manager) ResetContacts(contacts []core.Contact) error {
	next := make([]core.Contact, 0, len(contacts))
	for _, c := range contacts {
		for _, existing := range next {
			if existing.IsSameContact(c) {
				return ErrDuplicateContact
			}
		}
		next = append(next, c)
	}
	m.contacts = next
	return nil
}

func (m *Manager) FilteredContacts() []core.Contact {
	filter := m.filter
	if filter == nil {
		filter = ShowAll
	}
	out := make([]core.Contact, 0, len(m.contacts))
	for _, c := range m.contacts {
		if filter(c) {
			out = append(out, c)
		}
	}
	return out
}

func (m *Manager) UpdateFilteredContacts(p Predicate) {
	if p == nil {
		p = ShowAll
	}
	m.filter = p
}

func (m *Manager) indexOf(target core.Contact) int {
	for i, c := range m.contacts {
		if c.Equal(target) {
			return i
		}
	}
	return -1
}

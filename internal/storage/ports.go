// Package storage persists the contact list. Backends load and save the whole
// list at once; commands never reach storage directly.
package storage

import (
	"context"

	"addressbook/internal/core"
)

// ContactStore loads and saves a full snapshot of the address book.
type ContactStore interface {
	Load(ctx context.Context) ([]core.Contact, error)
	Save(ctx context.Context, contacts []core.Contact) error
}

package core

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

type (
	Name    string
	Phone   string
	Email   string
	Address string
	ClassID string
	Tag     string

	// TagSet is the unordered set of tags attached to a contact.
	TagSet = Set[Tag]

	// Contact is a person tracked by the address book together with their
	// tuition fee and the months they have paid for. Contacts are values:
	// edits build a new Contact and replace the old one in the model.
	Contact struct {
		ID         uuid.UUID
		Name       Name
		Phone      Phone
		Email      Email
		Address    Address
		Fees       Money
		ClassID    ClassID
		MonthsPaid MonthSet
		Tags       TagSet
	}
)

var (
	ErrEmptyName       = errors.New("empty name")
	ErrInvalidName     = errors.New("names should only contain alphanumeric characters and spaces")
	ErrInvalidPhone    = errors.New("phone numbers should only contain digits and be at least 3 digits long")
	ErrInvalidEmail    = errors.New("emails should be of the format local-part@domain")
	ErrEmptyAddress    = errors.New("empty address")
	ErrInvalidClassID  = errors.New("class ids should be alphanumeric and may contain hyphens")
	ErrInvalidTag      = errors.New("tags names should be alphanumeric")
	ErrMissingIdentity = errors.New("contact has no id")
)

var (
	namePattern    = regexp.MustCompile(`^[\p{L}\p{N}]+( [\p{L}\p{N}]+)*$`)
	phonePattern   = regexp.MustCompile(`^\d{3,}$`)
	emailPattern   = regexp.MustCompile(`^[\w+.\-]+@[A-Za-z0-9]([A-Za-z0-9\-]*[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9\-]*[A-Za-z0-9])?)+$`)
	classIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9\-]*$`)
	tagPattern     = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// NewContact returns c with a freshly generated ID when it has none.
func NewContact(c Contact) Contact {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return c
}

func (n Name) Validate() error {
	s := string(n)
	if strings.TrimSpace(s) == "" {
		return ErrEmptyName
	}
	if len(s) > 100 {
		return errors.New("name too long (max 100 characters)")
	}
	if !namePattern.MatchString(s) {
		return ErrInvalidName
	}
	return nil
}

func (p Phone) Validate() error {
	if !phonePattern.MatchString(string(p)) {
		return ErrInvalidPhone
	}
	return nil
}

func (e Email) Validate() error {
	if len(e) > 254 || !emailPattern.MatchString(string(e)) {
		return ErrInvalidEmail
	}
	return nil
}

func (a Address) Validate() error {
	if strings.TrimSpace(string(a)) == "" {
		return ErrEmptyAddress
	}
	if len(a) > 200 {
		return errors.New("address too long (max 200 characters)")
	}
	return nil
}

func (c ClassID) Validate() error {
	if len(c) > 20 || !classIDPattern.MatchString(string(c)) {
		return ErrInvalidClassID
	}
	return nil
}

func (t Tag) Validate() error {
	if !tagPattern.MatchString(string(t)) {
		return ErrInvalidTag
	}
	return nil
}

// Validate checks every field, including each paid month and tag.
func (c Contact) Validate() error {
	if c.ID == uuid.Nil {
		return ErrMissingIdentity
	}
	if err := c.Name.Validate(); err != nil {
		return err
	}
	if err := c.Phone.Validate(); err != nil {
		return err
	}
	if err := c.Email.Validate(); err != nil {
		return err
	}
	if err := c.Address.Validate(); err != nil {
		return err
	}
	if err := c.Fees.Validate(); err != nil {
		return err
	}
	if err := c.ClassID.Validate(); err != nil {
		return err
	}
	for _, m := range c.MonthsPaid.Sorted() {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	for _, t := range c.Tags.Sorted() {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports value equality over every field. Sets compare by membership.
func (c Contact) Equal(other Contact) bool {
	return c.ID == other.ID &&
		c.Name == other.Name &&
		c.Phone == other.Phone &&
		c.Email == other.Email &&
		c.Address == other.Address &&
		c.Fees == other.Fees &&
		c.ClassID == other.ClassID &&
		c.MonthsPaid.Equal(other.MonthsPaid) &&
		c.Tags.Equal(other.Tags)
}

// IsSameContact is the weaker notion used to reject duplicate entries: two
// contacts are the same person when name (case-insensitive) and phone match.
func (c Contact) IsSameContact(other Contact) bool {
	return strings.EqualFold(string(c.Name), string(other.Name)) && c.Phone == other.Phone
}

// WithMonthsPaid returns a copy of c whose paid-month set is months.
func (c Contact) WithMonthsPaid(months MonthSet) Contact {
	c.MonthsPaid = months
	return c
}

// HasPaid reports whether c paid for month m.
func (c Contact) HasPaid(m MonthPaid) bool {
	return c.MonthsPaid.Contains(m.Normalize())
}

package core

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// MonthConstraint is the user-facing rule every paid month must satisfy.
const MonthConstraint = "Month must be in YYYY-MM format, where MM is 01-12."

const monthLayout = "2006-01"

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

var ErrInvalidMonthFormat = errors.New("invalid month format")

// MonthPaid is a calendar month, written YYYY-MM, for which a fee was received.
//
// A direct conversion such as MonthPaid("2024-1") is not validated; use
// ParseMonthPaid for input coming from users or storage.
type MonthPaid string

// MonthSet is the unordered set of months a contact has paid for.
type MonthSet = Set[MonthPaid]

// NewMonthSet builds a MonthSet from the given months.
func NewMonthSet(months ...MonthPaid) MonthSet {
	return NewSet(months...)
}

// ParseMonthPaid trims and normalises raw, then validates it.
func ParseMonthPaid(raw string) (MonthPaid, error) {
	m := MonthPaid(strings.TrimSpace(raw)).Normalize()
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) MonthPaid {
	return MonthPaid(t.Format(monthLayout))
}

// Normalize strips bracket decoration, e.g. "[2024-01]" becomes "2024-01".
func (m MonthPaid) Normalize() MonthPaid {
	return MonthPaid(strings.NewReplacer("[", "", "]", "").Replace(string(m)))
}

// Validate reports whether the normalised month matches YYYY-MM with MM in 01-12.
func (m MonthPaid) Validate() error {
	n := m.Normalize()
	if !monthPattern.MatchString(string(n)) {
		return fmt.Errorf("%w: %s", ErrInvalidMonthFormat, n)
	}
	return nil
}

// Time returns the first instant of the month in UTC.
func (m MonthPaid) Time() (time.Time, error) {
	if err := m.Validate(); err != nil {
		return time.Time{}, err
	}
	return time.Parse(monthLayout, string(m.Normalize()))
}

// Next returns the following calendar month.
func (m MonthPaid) Next() (MonthPaid, error) {
	t, err := m.Time()
	if err != nil {
		return "", err
	}
	return MonthOf(t.AddDate(0, 1, 0)), nil
}

func (m MonthPaid) String() string {
	return string(m)
}

// MonthRange lists every month from..to inclusive. It returns an error when
// either bound is malformed or when to precedes from.
func MonthRange(from, to MonthPaid) ([]MonthPaid, error) {
	start, err := from.Time()
	if err != nil {
		return nil, err
	}
	end, err := to.Time()
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("month range end %s is before start %s", to, from)
	}

	var out []MonthPaid
	for t := start; !t.After(end); t = t.AddDate(0, 1, 0) {
		out = append(out, MonthOf(t))
	}
	return out, nil
}

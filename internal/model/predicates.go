package model

import (
	"strings"

	"addressbook/internal/core"
)

// NameContainsKeywords matches contacts whose name contains any keyword as a
// whole word, ignoring case.
func NameContainsKeywords(keywords []string) Predicate {
	return func(c core.Contact) bool {
		words := strings.Fields(string(c.Name))
		for _, kw := range keywords {
			for _, w := range words {
				if strings.EqualFold(w, kw) {
					return true
				}
			}
		}
		return false
	}
}

// HasNotPaid matches contacts that have not paid for month.
func HasNotPaid(month core.MonthPaid) Predicate {
	return func(c core.Contact) bool {
		return !c.HasPaid(month)
	}
}

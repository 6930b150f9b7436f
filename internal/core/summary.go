package core

// MonthSummary is a compact payment status for one month across a set of contacts.
type MonthSummary struct {
	Month       MonthPaid
	Paid        int
	Unpaid      int
	Collected   Money
	Outstanding Money
}

// Summarize tallies who has and has not paid for month.
func Summarize(contacts []Contact, month MonthPaid) MonthSummary {
	s := MonthSummary{Month: month.Normalize()}
	for _, c := range contacts {
		if c.HasPaid(month) {
			s.Paid++
			s.Collected.Cents += c.Fees.Cents
			continue
		}
		s.Unpaid++
		s.Outstanding.Cents += c.Fees.Cents
	}
	return s
}

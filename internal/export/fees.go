// Package export writes fee reports as Excel workbooks.
package export

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/xuri/excelize/v2"

	"addressbook/internal/core"
)

const (
	SheetName = "Fees"
	PaidMark  = "PAID"
)

var ErrPartialRange = errors.New("both ends of the month range are required")

// ReportMonths picks the month columns of a report. With no bounds it is
// every month any contact has paid for; otherwise every month from..to.
func ReportMonths(contacts []core.Contact, from, to core.MonthPaid) ([]core.MonthPaid, error) {
	switch {
	case from == "" && to == "":
		all := core.NewMonthSet()
		for _, c := range contacts {
			all = all.Union(c.MonthsPaid)
		}
		return all.Sorted(), nil
	case from == "" || to == "":
		return nil, ErrPartialRange
	default:
		return core.MonthRange(from, to)
	}
}

// Outstanding is what c still owes for months.
func Outstanding(c core.Contact, months []core.MonthPaid) core.Money {
	unpaid := 0
	for _, m := range months {
		if !c.HasPaid(m) {
			unpaid++
		}
	}
	return c.Fees.Times(unpaid)
}

// FeeReport writes one row per contact, ordered by class then name, and one
// column per month. Paid months are marked and the last column totals what
// is outstanding over the range.
func FeeReport(w io.Writer, contacts []core.Contact, months []core.MonthPaid) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := []any{"Name", "Phone", "Email", "Class", "Fee"}
	for _, m := range months {
		header = append(header, string(m))
	}
	header = append(header, "Outstanding")
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	sorted := slices.Clone(contacts)
	slices.SortStableFunc(sorted, func(a, b core.Contact) int {
		return cmp.Or(cmp.Compare(a.ClassID, b.ClassID), cmp.Compare(a.Name, b.Name))
	})

	row := 2
	for _, c := range sorted {
		values := []any{string(c.Name), string(c.Phone), string(c.Email), string(c.ClassID), c.Fees.Amount()}
		for _, m := range months {
			mark := ""
			if c.HasPaid(m) {
				mark = PaidMark
			}
			values = append(values, mark)
		}
		values = append(values, Outstanding(c, months).Amount())

		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
		row++
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

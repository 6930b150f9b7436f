package google

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"addressbook/internal/core"
	ports "addressbook/internal/sheets"
)

// parseLedgerRows converts a values matrix (as returned by the Sheets API)
// into ledger entries. The header row and rows that do not carry an event id
// and a valid month are skipped; the ledger may contain hand-written notes.
func parseLedgerRows(values [][]any) []ports.LedgerEntry {
	var out []ports.LedgerEntry
	for i, raw := range values {
		row := toStrings(raw)
		if len(row) < 7 {
			continue
		}
		if i == 0 && strings.EqualFold(row[0], ports.Header[0]) {
			continue
		}
		month, err := core.ParseMonthPaid(row[5])
		if err != nil || row[1] == "" {
			slog.Debug("Skipping ledger row", "row", i+1, "reason", "missing event id or month")
			continue
		}
		fee, err := core.ParseMoney(row[6])
		if err != nil {
			continue
		}
		recorded, _ := time.Parse(time.RFC3339, row[0])
		out = append(out, ports.LedgerEntry{
			RecordedAt:  recorded,
			EventID:     row[1],
			ContactID:   row[2],
			ContactName: row[3],
			ClassID:     row[4],
			Month:       month,
			Fee:         fee,
		})
	}
	return out
}

func toStrings(in []any) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}

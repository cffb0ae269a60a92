package domain

import (
	"fmt"
	"time"
)

// HistoryTimeLayout renders the timestamp prefix of a history entry.
const HistoryTimeLayout = "2006-01-02T15:04:05.000000"

func historyEntry(at time.Time, action string, amount float64) string {
	return fmt.Sprintf("%s - %s: %s", at.Format(HistoryTimeLayout), action, FormatAmount(amount))
}

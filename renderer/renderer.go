// Package renderer turns reports into markdown suitable for terminal
// rendering.
package renderer

import (
	"fmt"
	"sort"

	"github.com/mfreitas/clinicbook"
)

// methodRows returns one table row per payment method, in display order.
func methodRows(byMethod map[clinicbook.PaymentMethod]clinicbook.Money) [][]string {
	var rows [][]string
	for _, m := range clinicbook.PaymentMethods() {
		rows = append(rows, []string{m.String(), byMethod[m].String()})
	}
	return rows
}

// sortedKeys returns the map keys in alphabetical order for stable output.
func sortedKeys(m map[string]clinicbook.Money) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// receiptLine formats one receipt for a list section.
func receiptLine(r clinicbook.Receipt) string {
	return fmt.Sprintf("%s %s — %s (%s, %s)",
		r.When.Format("15:04"), r.Gross, r.ProfessionalName, r.ServiceType, r.PaymentMethod)
}

// expenseLine formats one expense for a list section.
func expenseLine(e clinicbook.Expense) string {
	return fmt.Sprintf("%s %s — %s: %s", e.When.Format("15:04"), e.Value, e.Category, e.Description)
}

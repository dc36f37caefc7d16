package clinicbook

import "sort"

// The aggregation functions in the reports files are pure: they recompute
// from the full collections on every call. Data volumes are a single clinic's
// transactions, caching would be complexity without a payoff.

// Totals is the daily bottom line: gross received, expenses paid, and the
// net retained by the clinic after commission splits.
type Totals struct {
	Gross   Money
	Expense Money
	Net     Money
}

// DailyReceipts returns the receipts of a calendar day in reverse
// chronological order. Receipts with equal timestamps come last-added first.
func DailyReceipts(all []Receipt, day Date) []Receipt {
	var out []Receipt
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Date() == day {
			out = append(out, all[i])
		}
	}
	// The slice is already in reverse insertion order, a stable sort by time
	// keeps that order for equal timestamps.
	sort.SliceStable(out, func(i, j int) bool { return out[i].When.After(out[j].When) })
	return out
}

// DailyExpenses returns the expenses of a calendar day, latest first.
func DailyExpenses(all []Expense, day Date) []Expense {
	var out []Expense
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Date() == day {
			out = append(out, all[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].When.After(out[j].When) })
	return out
}

// DailyTotals sums a day's receipts and expenses.
func DailyTotals(receipts []Receipt, expenses []Expense) Totals {
	var t Totals
	for _, r := range receipts {
		t.Gross = t.Gross.Add(r.Gross)
		t.Net = t.Net.Add(r.NetClinic)
	}
	for _, e := range expenses {
		t.Expense = t.Expense.Add(e.Value)
	}
	return t
}

// DailyByPaymentMethod sums gross values per payment method. Every enumerated
// method appears in the result, with zero when unused.
func DailyByPaymentMethod(receipts []Receipt) map[PaymentMethod]Money {
	byMethod := make(map[PaymentMethod]Money, 4)
	for _, m := range PaymentMethods() {
		byMethod[m] = M(0)
	}
	for _, r := range receipts {
		byMethod[r.PaymentMethod] = byMethod[r.PaymentMethod].Add(r.Gross)
	}
	return byMethod
}

// DailyReport is the assembled summary of a single day.
type DailyReport struct {
	Date           Date
	Totals         Totals
	ByMethod       map[PaymentMethod]Money
	Receipts       []Receipt
	Expenses       []Expense
	OpeningCash    Money
	HasOpeningCash bool
	// ClosingCash is the expected drawer at end of day: opening cash plus
	// cash receipts minus cash expenses.
	ClosingCash Money
}

// NewDailyReport computes the daily summary for a reference date.
func NewDailyReport(b *Book, day Date) *DailyReport {
	receipts := DailyReceipts(b.Receipts(), day)
	expenses := DailyExpenses(b.Expenses(), day)

	r := &DailyReport{
		Date:     day,
		Totals:   DailyTotals(receipts, expenses),
		ByMethod: DailyByPaymentMethod(receipts),
		Receipts: receipts,
		Expenses: expenses,
	}

	r.OpeningCash, r.HasOpeningCash = b.DailyCash(day)
	r.ClosingCash = r.OpeningCash.Add(r.ByMethod[Cash])
	for _, e := range expenses {
		if e.PaymentMethod == string(Cash) {
			r.ClosingCash = r.ClosingCash.Sub(e.Value)
		}
	}
	return r
}

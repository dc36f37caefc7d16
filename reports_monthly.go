package clinicbook

import "sort"

// MonthlyReceipts returns the receipts whose calendar month and year match
// the reference date. The match is calendar-local: a receipt on the last day
// of the month at any time of day belongs to that month.
func MonthlyReceipts(all []Receipt, ref Date) []Receipt {
	var out []Receipt
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Date().SameMonth(ref) {
			out = append(out, all[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].When.After(out[j].When) })
	return out
}

// MonthlyExpenses returns the expenses of the reference date's month.
func MonthlyExpenses(all []Expense, ref Date) []Expense {
	var out []Expense
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Date().SameMonth(ref) {
			out = append(out, all[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].When.After(out[j].When) })
	return out
}

// MonthlyTotals sums gross and net over a month's receipts, with the per
// payment method breakdown.
func MonthlyTotals(monthly []Receipt) (gross, net Money, byMethod map[PaymentMethod]Money) {
	byMethod = DailyByPaymentMethod(monthly)
	for _, r := range monthly {
		gross = gross.Add(r.Gross)
		net = net.Add(r.NetClinic)
	}
	return gross, net, byMethod
}

// MonthlyByServiceType sums gross values per service type, keyed by the
// catalog's display label. A receipt whose key is no longer in the catalog
// falls back to the raw key.
func MonthlyByServiceType(monthly []Receipt, catalog []ServiceType) map[string]Money {
	labels := make(map[string]string, len(catalog))
	for _, st := range catalog {
		labels[st.Key] = st.Label
	}
	byType := make(map[string]Money)
	for _, r := range monthly {
		label, ok := labels[r.ServiceType]
		if !ok {
			label = r.ServiceType
		}
		byType[label] = byType[label].Add(r.Gross)
	}
	return byType
}

// MonthlyReport is the assembled summary of a calendar month.
type MonthlyReport struct {
	Reference     Date // any day in the reported month
	Gross         Money
	Net           Money
	ExpenseTotal  Money
	ByMethod      map[PaymentMethod]Money
	ByServiceType map[string]Money
	Receipts      []Receipt
	Expenses      []Expense
}

// NewMonthlyReport computes the monthly summary for the reference date's month.
func NewMonthlyReport(b *Book, ref Date) *MonthlyReport {
	receipts := MonthlyReceipts(b.Receipts(), ref)
	expenses := MonthlyExpenses(b.Expenses(), ref)

	r := &MonthlyReport{
		Reference:     ref,
		ByServiceType: MonthlyByServiceType(receipts, b.ServiceTypes()),
		Receipts:      receipts,
		Expenses:      expenses,
	}
	r.Gross, r.Net, r.ByMethod = MonthlyTotals(receipts)
	for _, e := range expenses {
		r.ExpenseTotal = r.ExpenseTotal.Add(e.Value)
	}
	return r
}

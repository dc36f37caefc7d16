package clinicbook

// ProfessionalBreakdown is the per-professional slice of a day's receipts.
type ProfessionalBreakdown struct {
	ProfessionalID   string
	ProfessionalName string
	Gross            Money
	Professional     Money // the professional's commission total
	Clinic           Money // the clinic's net total
	ByMethod         map[PaymentMethod]Money
	Receipts         []Receipt
}

// NewProfessionalBreakdown filters receipts by professional id and sums the
// commission split. The receipts slice is expected already ordered (see
// DailyReceipts) and the order is preserved. An id with no receipts, deleted
// professionals included, yields zero totals rather than an error.
func NewProfessionalBreakdown(receipts []Receipt, professionalID string) ProfessionalBreakdown {
	bd := ProfessionalBreakdown{
		ProfessionalID: professionalID,
		ByMethod:       make(map[PaymentMethod]Money, 4),
	}
	for _, m := range PaymentMethods() {
		bd.ByMethod[m] = M(0)
	}
	for _, r := range receipts {
		if r.ProfessionalID != professionalID {
			continue
		}
		if bd.ProfessionalName == "" {
			bd.ProfessionalName = r.ProfessionalName
		}
		bd.Gross = bd.Gross.Add(r.Gross)
		bd.Professional = bd.Professional.Add(r.ProfessionalValue)
		bd.Clinic = bd.Clinic.Add(r.NetClinic)
		bd.ByMethod[r.PaymentMethod] = bd.ByMethod[r.PaymentMethod].Add(r.Gross)
		bd.Receipts = append(bd.Receipts, r)
	}
	return bd
}

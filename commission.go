package clinicbook

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ComputeSplit splits a receipt's gross value between the professional and
// the clinic according to the professional's commission percentage.
//
// A percentage of exactly 100 is a sentinel inherited from the historical
// books: it means the professional is paid outside the percentage system, so
// the professional share is zero and the clinic keeps the full recorded
// gross. Do not "fix" this without product confirmation.
//
// For any other percentage the professional share is gross*p/100 and the
// clinic keeps the remainder, so professional+clinic always equals gross
// exactly.
//
// ComputeSplit assumes validated input: a non-negative gross and a percentage
// within 0..100 (see ParsePercent).
func ComputeSplit(gross Money, p Percent) (professional, clinic Money) {
	if p == FullCommission {
		return M(0), gross
	}
	share := gross.value.Mul(decimal.NewFromInt(int64(p))).Div(hundred)
	professional = Money{value: share}
	clinic = gross.Sub(professional)
	return professional, clinic
}

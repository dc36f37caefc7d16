package clinicbook

import (
	"fmt"
	"time"
)

// PaymentMethod is a typed string identifying how a receipt was settled.
type PaymentMethod string

// The four payment methods receipts are restricted to.
const (
	Pix              PaymentMethod = "pix"
	Cash             PaymentMethod = "cash"
	Card             PaymentMethod = "card"
	InsurancePartner PaymentMethod = "insurance-partner"
)

// PaymentMethods lists the receipt payment methods in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{Pix, Cash, Card, InsurancePartner}
}

// ParsePaymentMethod parses a receipt payment method.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case Pix, Cash, Card, InsurancePartner:
		return PaymentMethod(s), nil
	default:
		return "", fmt.Errorf("unknown payment method %q, want one of pix, cash, card, insurance-partner", s)
	}
}

func (p PaymentMethod) String() string { return string(p) }

// Professional is a member of the clinic staff that receives a commission on
// the services they perform. Identity is immutable, the rest can be edited.
type Professional struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Specialty  string    `json:"specialty"`
	Phone      string    `json:"phone"`
	Commission Percent   `json:"commissionPercent"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Receipt records a paid service. The professional name is a snapshot taken
// at creation so historical records stay intact when the roster changes.
// Receipts are never updated in place, only created and deleted.
type Receipt struct {
	ID                string        `json:"id"`
	Gross             Money         `json:"grossValue"`
	ProfessionalValue Money         `json:"professionalValue"`
	NetClinic         Money         `json:"netClinic"`
	ProfessionalID    string        `json:"professionalId"`
	ProfessionalName  string        `json:"professionalName"`
	ServiceType       string        `json:"serviceType"`
	PaymentMethod     PaymentMethod `json:"paymentMethod"`
	When              time.Time     `json:"timestamp"`
}

// Date returns the calendar date of the receipt.
func (r Receipt) Date() Date { return DateOf(r.When) }

// Expense records money leaving the clinic. Category, description and
// payment method are free text, looser than the receipt enumeration.
type Expense struct {
	ID            string    `json:"id"`
	Value         Money     `json:"value"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	PaymentMethod string    `json:"paymentMethod"`
	When          time.Time `json:"timestamp"`
}

// Date returns the calendar date of the expense.
func (e Expense) Date() Date { return DateOf(e.When) }

// Patient is a minimal patient record kept so contact details survive in the
// same storage slot as the financial records.
type Patient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// Product is a stock item tracked by quantity against a minimum threshold.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"minQuantity"`
}

// Low reports whether the stock is at or below the minimum threshold.
func (p Product) Low() bool { return p.Quantity <= p.MinQuantity }

// DailyCashConfig holds the opening cash for a calendar date. At most one per date.
type DailyCashConfig struct {
	Date        Date  `json:"date"`
	InitialCash Money `json:"initialCash"`
}

// ServiceType is a user-editable category applied to receipts. The JSON field
// names are the storage blob's historical Portuguese pair: nome is the
// display label, valor the machine-readable key receipts reference.
type ServiceType struct {
	Label string `json:"nome"`
	Key   string `json:"valor"`
}

// DefaultServiceTypes returns the four service types a fresh book starts with.
func DefaultServiceTypes() []ServiceType {
	return []ServiceType{
		{Label: "Consultation", Key: "consultation"},
		{Label: "Procedure", Key: "procedure"},
		{Label: "Follow-up", Key: "follow-up"},
		{Label: "Surgery", Key: "surgery"},
	}
}

package clinicbook

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

// newTestBook returns a book over a memory store with a deterministic id
// generator and clock.
func newTestBook() (*Book, *MemoryStore) {
	store := &MemoryStore{}
	b := NewBook(NewSnapshot(), store)
	var n int
	b.NewID = func() string { n++; return fmt.Sprintf("id-%d", n) }
	b.Now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return b, store
}

func TestAddReceiptStoresSplit(t *testing.T) {
	b, store := newTestBook()

	p, err := b.AddProfessional("Dra. Ana", "Dermatology", "555-1234", 30)
	if err != nil {
		t.Fatalf("AddProfessional() error = %v", err)
	}

	r, err := b.AddReceipt(M(200), p.ID, "consultation", Pix, time.Time{})
	if err != nil {
		t.Fatalf("AddReceipt() error = %v", err)
	}

	if !r.ProfessionalValue.Equal(M(60)) {
		t.Errorf("ProfessionalValue = %v, want R$60.00", r.ProfessionalValue)
	}
	if !r.NetClinic.Equal(M(140)) {
		t.Errorf("NetClinic = %v, want R$140.00", r.NetClinic)
	}
	if r.ProfessionalName != "Dra. Ana" {
		t.Errorf("ProfessionalName = %q, want the roster name", r.ProfessionalName)
	}
	if r.When.IsZero() {
		t.Errorf("zero When must default to the book clock")
	}

	// every mutation mirrors the state: one save per Add call
	if store.Saves != 2 {
		t.Errorf("store.Saves = %d, want 2", store.Saves)
	}
}

func TestAddReceiptValidation(t *testing.T) {
	b, _ := newTestBook()
	p, _ := b.AddProfessional("Dra. Ana", "", "", 30)

	if _, err := b.AddReceipt(M(-1), p.ID, "consultation", Pix, time.Time{}); err == nil {
		t.Errorf("negative gross must be rejected")
	}
	if _, err := b.AddReceipt(M(100), p.ID, "consultation", "check", time.Time{}); err == nil {
		t.Errorf("unknown payment method must be rejected")
	}
	if _, err := b.AddReceipt(M(100), "ghost", "consultation", Pix, time.Time{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown professional error = %v, want ErrNotFound", err)
	}
}

func TestRemoveProfessionalKeepsReceipts(t *testing.T) {
	b, _ := newTestBook()
	p, _ := b.AddProfessional("Dra. Ana", "", "", 30)
	r, _ := b.AddReceipt(M(200), p.ID, "consultation", Pix, time.Time{})

	if err := b.RemoveProfessional(p.ID); err != nil {
		t.Fatalf("RemoveProfessional() error = %v", err)
	}

	if len(b.Professionals()) != 0 {
		t.Errorf("roster should be empty")
	}
	if len(b.Receipts()) != 1 {
		t.Fatalf("receipts must survive roster deletions")
	}
	got := b.Receipts()[0]
	if got.ProfessionalID != p.ID || got.ProfessionalName != "Dra. Ana" {
		t.Errorf("receipt lost its professional snapshot: %+v", got)
	}
	_ = r
}

func TestUpdateProfessionalOnlyAffectsNewReceipts(t *testing.T) {
	b, _ := newTestBook()
	p, _ := b.AddProfessional("Dra. Ana", "", "", 30)
	before, _ := b.AddReceipt(M(100), p.ID, "consultation", Pix, time.Time{})

	if err := b.UpdateProfessional(p.ID, "Dra. Ana", "", "", 50); err != nil {
		t.Fatalf("UpdateProfessional() error = %v", err)
	}
	after, _ := b.AddReceipt(M(100), p.ID, "consultation", Pix, time.Time{})

	if !before.ProfessionalValue.Equal(M(30)) {
		t.Errorf("old receipt share = %v, want R$30.00", before.ProfessionalValue)
	}
	if !after.ProfessionalValue.Equal(M(50)) {
		t.Errorf("new receipt share = %v, want R$50.00", after.ProfessionalValue)
	}
}

func TestAdjustProductQuantityClampsAtZero(t *testing.T) {
	b, _ := newTestBook()
	p, _ := b.AddProduct("gauze", 2, 5)

	if err := b.AdjustProductQuantity(p.ID, -10); err != nil {
		t.Fatalf("AdjustProductQuantity() error = %v", err)
	}
	if got := b.Products()[0].Quantity; got != 0 {
		t.Errorf("Quantity = %d, want clamp at 0", got)
	}

	if err := b.AdjustProductQuantity(p.ID, 3); err != nil {
		t.Fatalf("AdjustProductQuantity() error = %v", err)
	}
	if got := b.Products()[0].Quantity; got != 3 {
		t.Errorf("Quantity = %d, want 3", got)
	}

	if !b.Products()[0].Low() {
		t.Errorf("3 on hand with minimum 5 must flag as low")
	}

	if err := b.AdjustProductQuantity("ghost", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown product error = %v, want ErrNotFound", err)
	}
}

func TestSetDailyCashUpserts(t *testing.T) {
	b, _ := newTestBook()
	day := NewDate(2024, 5, 1)

	if _, ok := b.DailyCash(day); ok {
		t.Fatalf("fresh book must have no opening cash")
	}

	if err := b.SetDailyCash(day, M(100)); err != nil {
		t.Fatalf("SetDailyCash() error = %v", err)
	}
	if err := b.SetDailyCash(day, M(150)); err != nil {
		t.Fatalf("SetDailyCash() error = %v", err)
	}

	if len(b.DailyConfigs()) != 1 {
		t.Fatalf("DailyConfigs = %d entries, want one per date", len(b.DailyConfigs()))
	}
	got, ok := b.DailyCash(day)
	if !ok || !got.Equal(M(150)) {
		t.Errorf("DailyCash() = %v, %v, want R$150.00 true", got, ok)
	}
}

func TestServiceTypeCatalog(t *testing.T) {
	b, _ := newTestBook()

	if len(b.ServiceTypes()) != 4 {
		t.Fatalf("fresh book should carry the 4 default service types, got %d", len(b.ServiceTypes()))
	}

	if err := b.AddServiceType("Vaccination", "vaccination"); err != nil {
		t.Fatalf("AddServiceType() error = %v", err)
	}
	if err := b.AddServiceType("Other Vaccination", "vaccination"); err == nil {
		t.Errorf("duplicate key must be rejected")
	}
	if err := b.AddServiceType("", "x"); err == nil {
		t.Errorf("empty label must be rejected")
	}

	if err := b.RemoveServiceType("vaccination"); err != nil {
		t.Fatalf("RemoveServiceType() error = %v", err)
	}
	if err := b.RemoveServiceType("vaccination"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second removal error = %v, want ErrNotFound", err)
	}
}

func TestRemoveUnknownIDs(t *testing.T) {
	b, _ := newTestBook()
	for name, remove := range map[string]func(string) error{
		"receipt":      b.RemoveReceipt,
		"expense":      b.RemoveExpense,
		"patient":      b.RemovePatient,
		"product":      b.RemoveProduct,
		"professional": b.RemoveProfessional,
	} {
		if err := remove("ghost"); !errors.Is(err, ErrNotFound) {
			t.Errorf("remove %s: error = %v, want ErrNotFound", name, err)
		}
	}
}

func TestReplaceAll(t *testing.T) {
	b, store := newTestBook()
	b.AddPatient("Maria", "555-0000")

	other := NewSnapshot()
	other.Products = append(other.Products, Product{ID: "p1", Name: "syringe", Quantity: 10, MinQuantity: 2})

	if err := b.ReplaceAll(other); err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}
	if len(b.Patients()) != 0 || len(b.Products()) != 1 {
		t.Errorf("ReplaceAll must wholesale-replace the state")
	}
	if store.Last != other {
		t.Errorf("replacement state must be persisted")
	}
}

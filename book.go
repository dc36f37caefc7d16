package clinicbook

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a mutation targets an id that is not in the book.
var ErrNotFound = errors.New("record not found")

// Book is the in-memory source of truth for the clinic's records. Every
// mutation is synchronous and mirrors the full state to the persister before
// returning. The runtime is single user and event driven, so there is no
// locking.
type Book struct {
	s         *Snapshot
	persister Persister

	// NewID generates record identifiers. Tests inject a deterministic one.
	NewID func() string
	// Now provides timestamps for new records.
	Now func() time.Time
}

// NewBook builds a book over an already loaded snapshot.
func NewBook(s *Snapshot, p Persister) *Book {
	s.normalize()
	return &Book{
		s:         s,
		persister: p,
		NewID:     uuid.NewString,
		Now:       time.Now,
	}
}

// LoadBook loads the durable slot and builds the book over it.
func LoadBook(store *FileStore) (*Book, error) {
	s, err := store.Load()
	if err != nil {
		return nil, err
	}
	return NewBook(s, store), nil
}

// Snapshot returns the current state. The caller must not mutate it.
func (b *Book) Snapshot() *Snapshot { return b.s }

func (b *Book) persist() error {
	if b.persister == nil {
		return nil
	}
	if err := b.persister.Save(b.s); err != nil {
		return fmt.Errorf("cannot persist book: %w", err)
	}
	return nil
}

// Accessors. They return the live slices, callers must not mutate them.

func (b *Book) Professionals() []Professional  { return b.s.Professionals }
func (b *Book) Patients() []Patient            { return b.s.Patients }
func (b *Book) Receipts() []Receipt            { return b.s.Receipts }
func (b *Book) Expenses() []Expense            { return b.s.Expenses }
func (b *Book) Products() []Product            { return b.s.Products }
func (b *Book) DailyConfigs() []DailyCashConfig { return b.s.DailyConfigs }
func (b *Book) ServiceTypes() []ServiceType    { return b.s.ServiceTypes }

// FindProfessional returns the professional with this id, or nil if unknown.
func (b *Book) FindProfessional(id string) *Professional {
	for i := range b.s.Professionals {
		if b.s.Professionals[i].ID == id {
			return &b.s.Professionals[i]
		}
	}
	return nil
}

// DailyCash returns the opening cash configured for a date.
func (b *Book) DailyCash(day Date) (Money, bool) {
	for _, c := range b.s.DailyConfigs {
		if c.Date == day {
			return c.InitialCash, true
		}
	}
	return Money{}, false
}

// AddProfessional registers a new professional on the roster.
func (b *Book) AddProfessional(name, specialty, phone string, commission Percent) (Professional, error) {
	if err := commission.Validate(); err != nil {
		return Professional{}, err
	}
	p := Professional{
		ID:         b.NewID(),
		Name:       name,
		Specialty:  specialty,
		Phone:      phone,
		Commission: commission,
		CreatedAt:  b.Now(),
	}
	b.s.Professionals = append(b.s.Professionals, p)
	return p, b.persist()
}

// UpdateProfessional replaces the mutable fields of a professional. Identity
// and creation time never change.
func (b *Book) UpdateProfessional(id, name, specialty, phone string, commission Percent) error {
	if err := commission.Validate(); err != nil {
		return err
	}
	p := b.FindProfessional(id)
	if p == nil {
		return fmt.Errorf("professional %q: %w", id, ErrNotFound)
	}
	p.Name, p.Specialty, p.Phone, p.Commission = name, specialty, phone, commission
	return b.persist()
}

// RemoveProfessional takes a professional off the roster. Historical receipts
// keep their denormalized name and id: financial records never change
// retroactively when the staff roster does.
func (b *Book) RemoveProfessional(id string) error {
	return removeByID(b, &b.s.Professionals, id, func(p Professional) string { return p.ID })
}

// AddReceipt records a paid service. The commission split is computed once,
// here, and stored on the receipt together with a snapshot of the
// professional's name.
func (b *Book) AddReceipt(gross Money, professionalID, serviceType string, method PaymentMethod, when time.Time) (Receipt, error) {
	if gross.IsNegative() {
		return Receipt{}, fmt.Errorf("gross value %s must not be negative", gross)
	}
	if _, err := ParsePaymentMethod(string(method)); err != nil {
		return Receipt{}, err
	}
	p := b.FindProfessional(professionalID)
	if p == nil {
		return Receipt{}, fmt.Errorf("professional %q: %w", professionalID, ErrNotFound)
	}
	if when.IsZero() {
		when = b.Now()
	}
	professional, clinic := ComputeSplit(gross, p.Commission)
	r := Receipt{
		ID:                b.NewID(),
		Gross:             gross,
		ProfessionalValue: professional,
		NetClinic:         clinic,
		ProfessionalID:    p.ID,
		ProfessionalName:  p.Name,
		ServiceType:       serviceType,
		PaymentMethod:     method,
		When:              when,
	}
	b.s.Receipts = append(b.s.Receipts, r)
	return r, b.persist()
}

// RemoveReceipt deletes a receipt. Receipts are never edited in place.
func (b *Book) RemoveReceipt(id string) error {
	return removeByID(b, &b.s.Receipts, id, func(r Receipt) string { return r.ID })
}

// AddExpense records money leaving the clinic.
func (b *Book) AddExpense(value Money, category, description, method string, when time.Time) (Expense, error) {
	if value.IsNegative() {
		return Expense{}, fmt.Errorf("expense value %s must not be negative", value)
	}
	if when.IsZero() {
		when = b.Now()
	}
	e := Expense{
		ID:            b.NewID(),
		Value:         value,
		Category:      category,
		Description:   description,
		PaymentMethod: method,
		When:          when,
	}
	b.s.Expenses = append(b.s.Expenses, e)
	return e, b.persist()
}

// RemoveExpense deletes an expense.
func (b *Book) RemoveExpense(id string) error {
	return removeByID(b, &b.s.Expenses, id, func(e Expense) string { return e.ID })
}

// AddPatient registers a patient record.
func (b *Book) AddPatient(name, phone string) (Patient, error) {
	p := Patient{ID: b.NewID(), Name: name, Phone: phone, CreatedAt: b.Now()}
	b.s.Patients = append(b.s.Patients, p)
	return p, b.persist()
}

// RemovePatient deletes a patient record.
func (b *Book) RemovePatient(id string) error {
	return removeByID(b, &b.s.Patients, id, func(p Patient) string { return p.ID })
}

// AddProduct registers a stock item.
func (b *Book) AddProduct(name string, quantity, minQuantity int) (Product, error) {
	if quantity < 0 || minQuantity < 0 {
		return Product{}, fmt.Errorf("product quantities must not be negative, got %d/%d", quantity, minQuantity)
	}
	p := Product{ID: b.NewID(), Name: name, Quantity: quantity, MinQuantity: minQuantity}
	b.s.Products = append(b.s.Products, p)
	return p, b.persist()
}

// AdjustProductQuantity adds delta to a product's stock level. Quantity is
// clamped at zero: decrementing an empty stock is a no-op, not an error.
func (b *Book) AdjustProductQuantity(id string, delta int) error {
	for i := range b.s.Products {
		if b.s.Products[i].ID != id {
			continue
		}
		q := b.s.Products[i].Quantity + delta
		if q < 0 {
			q = 0
		}
		b.s.Products[i].Quantity = q
		return b.persist()
	}
	return fmt.Errorf("product %q: %w", id, ErrNotFound)
}

// RemoveProduct deletes a stock item.
func (b *Book) RemoveProduct(id string) error {
	return removeByID(b, &b.s.Products, id, func(p Product) string { return p.ID })
}

// SetDailyCash upserts the opening cash for a date: at most one entry per date.
func (b *Book) SetDailyCash(day Date, value Money) error {
	for i := range b.s.DailyConfigs {
		if b.s.DailyConfigs[i].Date == day {
			b.s.DailyConfigs[i].InitialCash = value
			return b.persist()
		}
	}
	b.s.DailyConfigs = append(b.s.DailyConfigs, DailyCashConfig{Date: day, InitialCash: value})
	return b.persist()
}

// AddServiceType adds a category to the open service type catalog.
func (b *Book) AddServiceType(label, key string) error {
	if label == "" || key == "" {
		return errors.New("service type label and key must not be empty")
	}
	for _, st := range b.s.ServiceTypes {
		if st.Key == key {
			return fmt.Errorf("service type %q already exists", key)
		}
	}
	b.s.ServiceTypes = append(b.s.ServiceTypes, ServiceType{Label: label, Key: key})
	return b.persist()
}

// RemoveServiceType removes a category from the catalog. Receipts referencing
// the key keep it, reports fall back to displaying the raw key.
func (b *Book) RemoveServiceType(key string) error {
	return removeByID(b, &b.s.ServiceTypes, key, func(s ServiceType) string { return s.Key })
}

// ReplaceAll wholesale-replaces the book's state, used by snapshot import.
// The confirmation dialog belongs to the caller.
func (b *Book) ReplaceAll(s *Snapshot) error {
	s.normalize()
	b.s = s
	return b.persist()
}

// removeByID removes the single element whose id matches, keeping order.
func removeByID[T any](b *Book, coll *[]T, id string, idOf func(T) string) error {
	i := slices.IndexFunc(*coll, func(v T) bool { return idOf(v) == id })
	if i < 0 {
		return fmt.Errorf("id %q: %w", id, ErrNotFound)
	}
	*coll = slices.Delete(*coll, i, i+1)
	return b.persist()
}

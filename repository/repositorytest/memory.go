// Package repositorytest provides in-memory stores and collaborators for tests.
package repositorytest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"DoctorsPortal/models"
	"DoctorsPortal/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Options struct {
	Catalog []models.AppointmentOption
	Calls   int
	Err     error
}

func (f *Options) FindAll(context.Context) ([]models.AppointmentOption, error) {
	f.Calls++
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]models.AppointmentOption, len(f.Catalog))
	copy(out, f.Catalog)
	return out, nil
}

func (f *Options) Specialties(context.Context) ([]models.Specialty, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	names := make([]models.Specialty, 0, len(f.Catalog))
	for _, o := range f.Catalog {
		names = append(names, models.Specialty{Name: o.Name})
	}
	return names, nil
}

type Bookings struct {
	mu   sync.Mutex
	Docs []models.Booking
	Err  error

	// Unique mimics the compound unique index.
	Unique bool

	// HideExisting makes FindExisting miss, as a concurrent request would.
	HideExisting bool
}

func (f *Bookings) FindByDate(_ context.Context, date string) ([]models.Booking, error) {
	return f.filter(func(b models.Booking) bool { return b.AppointmentDate == date })
}

func (f *Bookings) FindByEmail(_ context.Context, email string) ([]models.Booking, error) {
	return f.filter(func(b models.Booking) bool { return b.Email == email })
}

func (f *Bookings) FindExisting(_ context.Context, email, treatmentName, date string) ([]models.Booking, error) {
	if f.HideExisting {
		return []models.Booking{}, f.Err
	}
	return f.filter(func(b models.Booking) bool {
		return b.Email == email && b.TreatmentName == treatmentName && b.AppointmentDate == date
	})
}

func (f *Bookings) FindByID(_ context.Context, id primitive.ObjectID) (*models.Booking, error) {
	found, err := f.filter(func(b models.Booking) bool { return b.ID == id })
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%s: %w", util.BOOKING_NOT_FOUND, util.ErrNotFound)
	}
	return &found[0], nil
}

func (f *Bookings) Insert(_ context.Context, booking *models.Booking) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return primitive.NilObjectID, f.Err
	}
	if f.Unique {
		for _, b := range f.Docs {
			if b.Email == booking.Email && b.TreatmentName == booking.TreatmentName && b.AppointmentDate == booking.AppointmentDate {
				return primitive.NilObjectID, util.ErrDuplicate
			}
		}
	}
	doc := *booking
	doc.ID = primitive.NewObjectID()
	f.Docs = append(f.Docs, doc)
	return doc.ID, nil
}

func (f *Bookings) MarkPaid(_ context.Context, id primitive.ObjectID, transactionID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return false, f.Err
	}
	for i := range f.Docs {
		if f.Docs[i].ID == id {
			if f.Docs[i].Paid {
				return false, nil
			}
			f.Docs[i].Paid = true
			f.Docs[i].TransactionID = transactionID
			return true, nil
		}
	}
	return false, fmt.Errorf("%s: %w", util.BOOKING_NOT_FOUND, util.ErrNotFound)
}

func (f *Bookings) filter(keep func(models.Booking) bool) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	out := []models.Booking{}
	for _, b := range f.Docs {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

type Users struct {
	Docs []models.User
	Err  error
}

func (f *Users) Insert(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	if f.Err != nil {
		return primitive.NilObjectID, f.Err
	}
	doc := *user
	doc.ID = primitive.NewObjectID()
	f.Docs = append(f.Docs, doc)
	return doc.ID, nil
}

func (f *Users) FindAll(context.Context) ([]models.User, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]models.User{}, f.Docs...), nil
}

func (f *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	for i := range f.Docs {
		if f.Docs[i].Email == email {
			u := f.Docs[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", util.USER_NOT_FOUND, util.ErrNotFound)
}

func (f *Users) SetRole(_ context.Context, id primitive.ObjectID, role string) error {
	if f.Err != nil {
		return f.Err
	}
	for i := range f.Docs {
		if f.Docs[i].ID == id {
			f.Docs[i].Role = role
			return nil
		}
	}
	return fmt.Errorf("%s: %w", util.USER_NOT_FOUND, util.ErrNotFound)
}

type Doctors struct {
	Docs []models.Doctor
	Err  error
}

func (f *Doctors) Insert(_ context.Context, doctor *models.Doctor) (primitive.ObjectID, error) {
	if f.Err != nil {
		return primitive.NilObjectID, f.Err
	}
	doc := *doctor
	doc.ID = primitive.NewObjectID()
	f.Docs = append(f.Docs, doc)
	return doc.ID, nil
}

func (f *Doctors) FindAll(context.Context) ([]models.Doctor, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]models.Doctor{}, f.Docs...), nil
}

func (f *Doctors) Delete(_ context.Context, id primitive.ObjectID) error {
	if f.Err != nil {
		return f.Err
	}
	for i := range f.Docs {
		if f.Docs[i].ID == id {
			f.Docs = append(f.Docs[:i], f.Docs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s: %w", util.DOCTOR_NOT_FOUND, util.ErrNotFound)
}

type Payments struct {
	Docs []models.Payment
	Err  error

	// Bookings is joined by FindOrphaned.
	Bookings *Bookings
}

func (f *Payments) Insert(_ context.Context, p *models.Payment) (primitive.ObjectID, error) {
	if f.Err != nil {
		return primitive.NilObjectID, f.Err
	}
	doc := *p
	doc.ID = primitive.NewObjectID()
	f.Docs = append(f.Docs, doc)
	return doc.ID, nil
}

func (f *Payments) FindOrphaned(ctx context.Context) ([]models.Payment, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	out := []models.Payment{}
	if f.Bookings == nil {
		return out, nil
	}
	for _, p := range f.Docs {
		booking, err := f.Bookings.FindByID(ctx, p.BookingID)
		if err != nil {
			continue
		}
		if !booking.Paid {
			out = append(out, p)
		}
	}
	return out, nil
}

// DirectTx runs the function without a transaction and counts calls.
type DirectTx struct{ Calls int }

func (d *DirectTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	d.Calls++
	return fn(ctx)
}

type Processor struct {
	Amount int64
	Secret string
	Err    error
}

func (f *Processor) CreatePaymentIntent(_ context.Context, amount int64) (string, error) {
	f.Amount = amount
	return f.Secret, f.Err
}

type Tokens struct{}

func (Tokens) GenerateToken(email string) (string, error) {
	return "token-for-" + email, nil
}

// Cache is an in-process redis.Cache for the appointment catalog.
type Cache struct {
	Values map[string][]models.AppointmentOption
	Gets   int
}

func NewCache() *Cache {
	return &Cache{Values: map[string][]models.AppointmentOption{}}
}

func (m *Cache) GetCache(_ context.Context, key string, out interface{}) (bool, error) {
	m.Gets++
	v, ok := m.Values[key]
	if !ok {
		return false, nil
	}
	*(out.(*[]models.AppointmentOption)) = append([]models.AppointmentOption{}, v...)
	return true, nil
}

func (m *Cache) SetCache(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.Values[key] = append([]models.AppointmentOption{}, value.([]models.AppointmentOption)...)
	return nil
}

func (m *Cache) DeleteCache(_ context.Context, key string) error {
	delete(m.Values, key)
	return nil
}

func (m *Cache) Close() error { return nil }

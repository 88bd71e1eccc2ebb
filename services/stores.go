package services

import (
	"context"

	"DoctorsPortal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The stores below are satisfied by the Mongo repositories in package repository.

type AppointmentOptionStore interface {
	FindAll(ctx context.Context) ([]models.AppointmentOption, error)
	Specialties(ctx context.Context) ([]models.Specialty, error)
}

type BookingStore interface {
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	FindExisting(ctx context.Context, email, treatmentName, date string) ([]models.Booking, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	Insert(ctx context.Context, booking *models.Booking) (primitive.ObjectID, error)
	MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) (bool, error)
}

type UserStore interface {
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) error
}

type DoctorStore interface {
	Insert(ctx context.Context, doctor *models.Doctor) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type PaymentStore interface {
	Insert(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error)
	// FindOrphaned returns payments whose booking exists and is not yet paid.
	FindOrphaned(ctx context.Context) ([]models.Payment, error)
}

type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type TokenIssuer interface {
	GenerateToken(email string) (string, error)
}

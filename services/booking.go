package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"DoctorsPortal/models"
	"DoctorsPortal/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingService struct {
	bookings BookingStore
	now      func() time.Time
}

func NewBookingService(bookings BookingStore) *BookingService {
	return &BookingService{bookings: bookings, now: time.Now}
}

// InsertResult reports whether a record was stored. When the write was
// refused Message tells the caller why.
type InsertResult struct {
	Acknowledged bool
	InsertedID   primitive.ObjectID
	Message      string
}

/*
* One booking per email per treatment per day
* Look for an existing one before inserting
* The unique index catches two requests racing past the lookup
 */
func (s *BookingService) CreateBooking(ctx context.Context, booking *models.Booking) (*InsertResult, error) {
	booking.Email = strings.TrimSpace(booking.Email)
	refused := &InsertResult{Message: fmt.Sprintf(util.BOOKING_ALREADY_EXISTS, booking.AppointmentDate)}

	existing, err := s.bookings.FindExisting(ctx, booking.Email, booking.TreatmentName, booking.AppointmentDate)
	if err != nil {
		log.Error().Err(err).Msg("Error while checking existing bookings")
		return nil, err
	}
	if len(existing) > 0 {
		return refused, nil
	}

	booking.ID = primitive.NilObjectID
	booking.Paid = false
	booking.TransactionID = ""
	booking.CreatedAt = s.now()
	id, err := s.bookings.Insert(ctx, booking)
	if errors.Is(err, util.ErrDuplicate) {
		log.Info().Str("email", booking.Email).Str("date", booking.AppointmentDate).Msg("Concurrent duplicate booking refused")
		return refused, nil
	}
	if err != nil {
		log.Error().Err(err).Msg("Error while inserting booking")
		return nil, err
	}
	booking.ID = id
	return &InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// FetchBookingsByEmail lists the caller's bookings; callerEmail is the
// verified token claim and must match the requested email.
func (s *BookingService) FetchBookingsByEmail(ctx context.Context, email, callerEmail string) ([]models.Booking, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: %s", util.ErrInvalidInput, util.EMAIL_NOT_PROVIDED)
	}
	if email != callerEmail {
		return nil, util.ErrForbidden
	}
	bookings, err := s.bookings.FindByEmail(ctx, email)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("Error while fetching bookings")
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) FetchBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.ErrInvalidID
	}
	booking, err := s.bookings.FindByID(ctx, objID)
	if err != nil {
		if !errors.Is(err, util.ErrNotFound) {
			log.Error().Err(err).Str("id", id).Msg("Error while fetching booking")
		}
		return nil, err
	}
	return booking, nil
}

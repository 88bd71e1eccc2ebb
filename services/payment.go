package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"DoctorsPortal/models"
	"DoctorsPortal/payment"
	"DoctorsPortal/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentService struct {
	payments  PaymentStore
	bookings  BookingStore
	tx        Transactor
	processor payment.Processor
	now       func() time.Time
}

func NewPaymentService(payments PaymentStore, bookings BookingStore, tx Transactor, processor payment.Processor) *PaymentService {
	return &PaymentService{payments: payments, bookings: bookings, tx: tx, processor: processor, now: time.Now}
}

// CreatePaymentIntent asks the processor for a card payment of price and
// returns the client secret it issued.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", fmt.Errorf("%w: price must be positive", util.ErrInvalidInput)
	}
	secret, err := s.processor.CreatePaymentIntent(ctx, payment.ToMinorUnits(price))
	if err != nil {
		log.Error().Err(err).Float64("price", price).Msg("Error while creating payment intent")
		return "", err
	}
	return secret, nil
}

/*
* Store the payment then flag the booking as paid
* A booking already paid is refused, its first transaction id stands
* Both writes share a transaction when the store supports it
* Otherwise the reconciliation job repairs a booking left unpaid
 */
func (s *PaymentService) RecordPayment(ctx context.Context, input *models.PaymentInput) (primitive.ObjectID, error) {
	bookingID, err := primitive.ObjectIDFromHex(strings.TrimSpace(input.BookingID))
	if err != nil {
		return primitive.NilObjectID, util.ErrInvalidID
	}
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if !errors.Is(err, util.ErrNotFound) {
			log.Error().Err(err).Str("bookingId", input.BookingID).Msg("Error while fetching booking for payment")
		}
		return primitive.NilObjectID, err
	}
	if booking.Paid {
		return primitive.NilObjectID, fmt.Errorf("%s: %w", util.BOOKING_ALREADY_PAID, util.ErrDuplicate)
	}
	record := &models.Payment{
		BookingID:     bookingID,
		TransactionID: strings.TrimSpace(input.TransactionID),
		Amount:        input.Amount,
		Email:         input.Email,
		CreatedAt:     s.now(),
	}

	var paymentID primitive.ObjectID
	err = s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		id, err := s.payments.Insert(ctx, record)
		if err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}
		changed, err := s.bookings.MarkPaid(ctx, bookingID, record.TransactionID)
		if err != nil {
			return fmt.Errorf("mark booking paid: %w", err)
		}
		if !changed {
			// paid by a concurrent request since the lookup
			return fmt.Errorf("%s: %w", util.BOOKING_ALREADY_PAID, util.ErrDuplicate)
		}
		paymentID = id
		return nil
	})
	if errors.Is(err, util.ErrDuplicate) {
		log.Info().Str("bookingId", input.BookingID).Msg("Payment for an already paid booking refused")
		return primitive.NilObjectID, err
	}
	if err != nil {
		log.Error().Err(err).Str("bookingId", input.BookingID).Msg("Error while recording payment")
		return primitive.NilObjectID, err
	}
	return paymentID, nil
}

/*
* Flag paid every booking whose payment was stored without the booking update
* Only unpaid bookings are looked at, so a healthy store repairs nothing
 */
func (s *PaymentService) Reconcile(ctx context.Context) (int, error) {
	orphans, err := s.payments.FindOrphaned(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error while fetching orphaned payments")
		return 0, err
	}
	repaired := 0
	for _, p := range orphans {
		changed, err := s.bookings.MarkPaid(ctx, p.BookingID, p.TransactionID)
		if errors.Is(err, util.ErrNotFound) {
			log.Warn().Str("paymentId", p.ID.Hex()).Str("bookingId", p.BookingID.Hex()).Msg("payment references missing booking")
			continue
		}
		if err != nil {
			return repaired, err
		}
		if changed {
			repaired++
		}
	}
	return repaired, nil
}

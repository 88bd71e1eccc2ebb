package payment

import (
	"context"
	"errors"

	"DoctorsPortal/util"

	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Processor creates card payment intents on a hosted payment API.
type Processor interface {
	CreatePaymentIntent(ctx context.Context, amount int64) (string, error)
}

// ToMinorUnits converts a price to cents, truncating any fraction of a cent.
func ToMinorUnits(price float64) int64 {
	return int64(price * 100)
}

type StripeProcessor struct {
	api      *client.API
	currency string
}

/*
* An empty key yields a processor that refuses every request
* so the rest of the API can run without payments configured
 */
func NewStripe(secretKey, currency string) Processor {
	if secretKey == "" {
		log.Warn().Msg("STRIPE_SECRET_KEY not set, payment intents disabled")
		return disabled{}
	}
	return &StripeProcessor{api: client.New(secretKey, nil), currency: currency}
}

func (s *StripeProcessor) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(s.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}

type disabled struct{}

func (disabled) CreatePaymentIntent(context.Context, int64) (string, error) {
	return "", errors.New(util.PAYMENT_PROCESSOR_NOT_SETUP)
}

package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(9900), ToMinorUnits(99))
	assert.Equal(t, int64(1250), ToMinorUnits(12.5))
	assert.Equal(t, int64(0), ToMinorUnits(0.009))
}

func TestNewStripe_WithoutKey(t *testing.T) {
	p := NewStripe("", "usd")
	_, err := p.CreatePaymentIntent(context.Background(), 100)
	assert.Error(t, err)
}

func TestNewStripe_WithKey(t *testing.T) {
	p := NewStripe("sk_test_123", "usd")
	assert.IsType(t, &StripeProcessor{}, p)
}

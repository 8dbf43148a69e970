package payment

import (
	"context"
	"math"

	apperrors "github.com/spec-kit/bistro-gateway/pkg/util"
)

// Provider creates payment intents with an external processor. Amounts are
// integer minor-currency units.
type Provider interface {
	CreateIntent(ctx context.Context, amount int64) (clientSecret string, err error)
}

// Bridge converts decimal prices to provider amounts and surfaces provider
// rejections as payment errors. No retries.
type Bridge struct {
	provider Provider
}

// NewBridge constructs a bridge around the given provider.
func NewBridge(provider Provider) *Bridge {
	return &Bridge{provider: provider}
}

// MinorUnits converts a decimal currency amount to integer minor units.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateIntent creates a payment intent for the given decimal price.
func (b *Bridge) CreateIntent(ctx context.Context, price float64) (string, error) {
	secret, err := b.provider.CreateIntent(ctx, MinorUnits(price))
	if err != nil {
		return "", apperrors.NewPaymentError(err)
	}
	return secret, nil
}

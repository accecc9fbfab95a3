package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// ErrGateway marks failures from the payment processor so callers can map
// them to a 5xx without leaking processor internals.
var ErrGateway = errors.New("payment gateway error")

// Gateway wraps Stripe payment-intent creation. Card payments only, fixed
// currency.
type Gateway struct {
	api      *client.API
	currency stripe.Currency
}

func NewGateway(secretKey string) *Gateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Gateway{api: api, currency: stripe.CurrencyINR}
}

// MinorUnits converts a major-unit price to integer minor units, truncating.
func MinorUnits(price float64) int64 {
	return int64(price * 100)
}

// CreateIntent creates a card-only payment intent and returns the client
// secret the caller needs to complete payment.
func (g *Gateway) CreateIntent(ctx context.Context, price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(MinorUnits(price)),
		Currency:           stripe.String(string(g.currency)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return intent.ClientSecret, nil
}

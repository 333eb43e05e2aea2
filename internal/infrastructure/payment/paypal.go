// Package payment adapts the PayPal Orders v2 API to the PaymentProvider
// port. An intent here is a PayPal order created with intent=CAPTURE and
// tagged with the storefront order id as its purchase-unit reference.
package payment

import (
	"context"
	"fmt"

	"github.com/plutov/paypal/v4"
	"github.com/rs/zerolog"

	"github.com/velura/storefront-api/internal/core/ports"
)

// Config carries the PayPal REST credentials. Live selects the production
// API base; the default is the sandbox.
type Config struct {
	ClientID string
	Secret   string
	Live     bool
}

// Configured reports whether both credentials are present.
func (c Config) Configured() bool {
	return c.ClientID != "" && c.Secret != ""
}

// PayPalProvider implements ports.PaymentProvider against PayPal Orders v2.
type PayPalProvider struct {
	client *paypal.Client
	log    zerolog.Logger
}

// NewPayPalProvider builds the REST client and fetches an initial access
// token; the SDK refreshes it on expiry.
func NewPayPalProvider(ctx context.Context, cfg Config, log zerolog.Logger) (*PayPalProvider, error) {
	base := paypal.APIBaseSandBox
	if cfg.Live {
		base = paypal.APIBaseLive
	}

	client, err := paypal.NewClient(cfg.ClientID, cfg.Secret, base)
	if err != nil {
		return nil, fmt.Errorf("paypal client: %w", err)
	}
	if _, err := client.GetAccessToken(ctx); err != nil {
		return nil, fmt.Errorf("paypal access token: %w", err)
	}

	return &PayPalProvider{client: client, log: log}, nil
}

// CreateIntent creates a CAPTURE-intent PayPal order for the amount, tagged
// with referenceID, and returns the provider's order id.
func (p *PayPalProvider) CreateIntent(ctx context.Context, amount float64, currency, referenceID string) (string, error) {
	units := []paypal.PurchaseUnitRequest{
		{
			ReferenceID: referenceID,
			Amount: &paypal.PurchaseUnitAmount{
				Currency: currency,
				Value:    fmt.Sprintf("%.2f", amount),
			},
		},
	}

	order, err := p.client.CreateOrder(ctx, paypal.OrderIntentCapture, units, nil, nil)
	if err != nil {
		return "", fmt.Errorf("paypal create order: %w", err)
	}

	p.log.Debug().Str("intent_id", order.ID).Str("reference_id", referenceID).Msg("payment intent created")
	return order.ID, nil
}

// CaptureIntent captures a previously created PayPal order and reads the
// original reference id back out of the capture response.
func (p *PayPalProvider) CaptureIntent(ctx context.Context, intentID string) (*ports.CaptureResult, error) {
	capture, err := p.client.CaptureOrder(ctx, intentID, paypal.CaptureOrderRequest{})
	if err != nil {
		return nil, fmt.Errorf("paypal capture order: %w", err)
	}

	if len(capture.PurchaseUnits) == 0 {
		return nil, fmt.Errorf("paypal capture order %s: response has no purchase units", intentID)
	}

	return &ports.CaptureResult{
		ReferenceID: capture.PurchaseUnits[0].ReferenceID,
		Status:      string(capture.Status),
	}, nil
}

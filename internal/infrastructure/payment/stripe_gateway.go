package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"

	domainerrors "github.com/rcampos/vinylstore-backend/internal/domain/errors"
	"github.com/rcampos/vinylstore-backend/internal/domain/ports"
)

// StripeGateway implementa ports.PaymentGateway sobre o Stripe Checkout
type StripeGateway struct {
	webhookSecret string
	successURL    string
	cancelURL     string
	logger        ports.Logger
}

// NewStripeGateway cria um novo StripeGateway. baseURL é a URL pública da
// API, usada para montar as URLs de retorno do checkout.
func NewStripeGateway(secretKey, webhookSecret, baseURL string, logger ports.Logger) *StripeGateway {
	stripe.Key = secretKey

	return &StripeGateway{
		webhookSecret: webhookSecret,
		successURL:    baseURL + "/purchase/success",
		cancelURL:     baseURL + "/purchase/cancel",
		logger:        logger,
	}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, input ports.CheckoutInput) (*ports.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(input.RecordName),
					},
					UnitAmount: stripe.Int64(input.AmountInCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:    stripe.String(g.successURL),
		CancelURL:     stripe.String(g.cancelURL),
		CustomerEmail: stripe.String(input.CustomerEmail),
	}
	params.Context = ctx
	params.AddMetadata(ports.MetadataRecordIDKey, input.RecordID)

	s, err := session.New(params)
	if err != nil {
		g.logger.Error("failed to create stripe checkout session",
			"record_id", input.RecordID,
			"error", err,
		)
		return nil, fmt.Errorf("stripe checkout session: %w", err)
	}

	return &ports.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) VerifyWebhook(payload []byte, signature string) (*ports.WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		g.logger.Warn("stripe webhook signature verification failed", "error", err)
		return nil, domainerrors.ErrInvalidSignature
	}

	ev := &ports.WebhookEvent{Type: ports.WebhookEventType(event.Type)}

	if event.Type == stripe.EventTypeCheckoutSessionCompleted {
		var cs stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
			return nil, fmt.Errorf("failed to decode checkout session: %w", err)
		}

		ev.SessionID = cs.ID
		ev.Metadata = cs.Metadata
		ev.CustomerEmail = cs.CustomerEmail
		if ev.CustomerEmail == "" && cs.CustomerDetails != nil {
			ev.CustomerEmail = cs.CustomerDetails.Email
		}
	}

	return ev, nil
}

package interfaces

import (
	"context"

	"studio_booking/internal/domain/entities"
)

// IPaymentGateway abstracts the hosted-checkout payment provider.
//
// The booking flow never captures card data: it hands the client a signed
// form that posts straight to the provider, and learns the outcome through
// the provider's server-to-server notification.
type IPaymentGateway interface {
	BuildCheckout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutForm, error)
}

// IChecksumSigner signs and verifies gateway parameter sets.
type IChecksumSigner interface {
	Sign(params map[string]string) string
	Verify(params map[string]string) bool
}

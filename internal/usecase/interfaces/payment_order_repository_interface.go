package interfaces

import (
	"context"
	"time"

	"studio_booking/internal/domain/entities"
)

// IPaymentOrderRepository persists pending payment orders.
//
// GetByID returns a zero PaymentOrder when the id is unknown.
type IPaymentOrderRepository interface {
	Create(ctx context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error)
	GetByID(ctx context.Context, orderID string) (entities.PaymentOrder, error)
	// MarkCompleted moves a pending order to completed. It reports false when
	// the order was already completed or does not exist.
	MarkCompleted(ctx context.Context, orderID string, at time.Time) (bool, error)
}

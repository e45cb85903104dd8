package interfaces

import (
	"context"

	"studio_booking/internal/domain/entities"
)

// INotifier delivers booking notices. Delivery is best-effort: callers log
// failures and carry on.
type INotifier interface {
	BookingConfirmed(ctx context.Context, n entities.BookingNotice) error
	InvoiceRequested(ctx context.Context, n entities.BookingNotice) error
}

package notification

import (
	"context"
	"log"
	"time"

	"studio_booking/internal/domain/entities"
	"studio_booking/internal/usecase/interfaces"
)

// LogNotifier writes notices to the service log. Used when no broker is
// configured.
type LogNotifier struct{}

var _ interfaces.INotifier = LogNotifier{}

func (LogNotifier) BookingConfirmed(_ context.Context, n entities.BookingNotice) error {
	log.Printf("[notify][log] booking confirmed ref=%s studio=%s start=%s end=%s name=%q paid_hours=%.2f amount=%d",
		n.ReservationReference, n.Studio, n.Interval.Start.Format(time.RFC3339), n.Interval.End.Format(time.RFC3339), n.Payer.Name, n.PaidHours, n.Amount)
	return nil
}

func (LogNotifier) InvoiceRequested(_ context.Context, n entities.BookingNotice) error {
	log.Printf("[notify][log] invoice requested ref=%s order_id=%s amount=%d", n.ReservationReference, n.OrderID, n.Amount)
	return nil
}

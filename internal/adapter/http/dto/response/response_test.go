package response

import (
	"testing"
	"time"

	"studio_booking/internal/domain/entities"
	"studio_booking/internal/usecase"
)

func TestFromBookingOutcome(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	interval := entities.TimeInterval{Start: start, End: start.Add(3 * time.Hour)}

	t.Run("committed", func(t *testing.T) {
		got := FromBookingOutcome(usecase.BookingOutcome{
			Status:      usecase.BookingCommitted,
			Coverage:    entities.ComputeCoverage(180, 5),
			PartnerName: "Channel A",
			Reservation: &entities.Reservation{Studio: entities.StudioBig, Interval: interval, ExternalReference: "ev1"},
		})
		if got.Status != "committed" || got.Payment != nil || got.Reservation == nil {
			t.Fatalf("unexpected response: %+v", got)
		}
		if got.Reservation.ID != "ev1" || got.Reservation.Label != entities.StudioBig.Label() {
			t.Fatalf("unexpected reservation: %+v", got.Reservation)
		}
		if got.TotalHours != 3 || got.FreeHours != 3 || got.PayableHours != 0 {
			t.Fatalf("unexpected hours: %+v", got)
		}
	})

	t.Run("payment required", func(t *testing.T) {
		got := FromBookingOutcome(usecase.BookingOutcome{
			Status:   usecase.BookingPaymentRequired,
			Coverage: entities.ComputeCoverage(180, 1),
			Order:    &entities.PaymentOrder{OrderID: "STB1", Amount: 1050, TaxIncluded: true},
			Checkout: &entities.CheckoutForm{ActionURL: "https://pay.example/checkout", Fields: map[string]string{"MerchantTradeNo": "STB1"}},
		})
		if got.Payment == nil || got.Reservation != nil {
			t.Fatalf("unexpected response: %+v", got)
		}
		if got.Payment.OrderID != "STB1" || got.Payment.Amount != 1050 || got.Payment.FormActionURL != "https://pay.example/checkout" {
			t.Fatalf("unexpected payment: %+v", got.Payment)
		}
		if got.PayableHours != 2 || got.FreeHours != 1 {
			t.Fatalf("unexpected hours: %+v", got)
		}
	})
}

func TestFromQuotaOverview(t *testing.T) {
	got := FromQuotaOverview(usecase.QuotaOverview{
		Partner: entities.PartnerQuota{Code: "KOL-A", DisplayName: "Channel A", HoursPerMonth: 10},
		Months: []entities.MonthlyRemaining{
			{YearMonth: "2025-03", ConsumedHours: 4, RemainingHours: 6},
			{YearMonth: "2025-04", ConsumedHours: 12, RemainingHours: 0},
		},
	})
	if got.Name != "Channel A" || got.HoursPerMonth != 10 || len(got.Months) != 2 {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.Months[1].Used != 12 || got.Months[1].Remaining != 0 {
		t.Fatalf("unexpected month: %+v", got.Months[1])
	}
}

func TestFromBusySlots(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	got := FromBusySlots(entities.StudioSmall, start, start.AddDate(0, 0, 1), nil)
	if got.Events == nil || len(got.Events) != 0 {
		t.Fatalf("expected empty non-nil events, got %+v", got.Events)
	}
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"studio_booking/internal/domain/entities"
	mock_interfaces "studio_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type bookingMocks struct {
	calendar *mock_interfaces.MockICalendar
	ledger   *mock_interfaces.MockIQuotaLedgerRepository
	orders   *mock_interfaces.MockIPaymentOrderRepository
	gateway  *mock_interfaces.MockIPaymentGateway
	notifier *mock_interfaces.MockINotifier
}

func newBookingUseCase(t *testing.T) (*BookingUseCase, bookingMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := bookingMocks{
		calendar: mock_interfaces.NewMockICalendar(ctrl),
		ledger:   mock_interfaces.NewMockIQuotaLedgerRepository(ctrl),
		orders:   mock_interfaces.NewMockIPaymentOrderRepository(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
		notifier: mock_interfaces.NewMockINotifier(ctrl),
	}
	settings := testSettings()
	uc := NewBookingUseCase(m.calendar, NewQuotaLedger(m.ledger, settings), m.orders, m.gateway, m.notifier, settings)
	uc.now = func() time.Time { return time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC) }
	return uc, m
}

func bookingAt(h int, hours int) BookingRequest {
	start := time.Date(2025, 3, 1, h, 0, 0, 0, time.UTC)
	return BookingRequest{
		Studio:   entities.StudioBig,
		Interval: entities.TimeInterval{Start: start, End: start.Add(time.Duration(hours) * time.Hour)},
		Payer:    entities.Payer{Name: "Ann", Contact: "ann@example.com"},
	}
}

func TestBookingUseCase_Request_Validation(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(r *BookingRequest)
		field string
	}{
		{"unknown studio", func(r *BookingRequest) { r.Studio = "attic" }, "studio"},
		{"end before start", func(r *BookingRequest) { r.Interval.End = r.Interval.Start.Add(-time.Hour) }, "end"},
		{"missing name", func(r *BookingRequest) { r.Payer.Name = "  " }, "name"},
		{"missing contact", func(r *BookingRequest) { r.Payer.Contact = "" }, "contact"},
		{"shorter than a minute", func(r *BookingRequest) { r.Interval.End = r.Interval.Start.Add(20 * time.Second) }, "end"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newBookingUseCase(t)
			req := bookingAt(10, 2)
			tc.edit(&req)

			_, err := uc.Request(context.Background(), req)
			var ve entities.ValidationError
			if !errors.As(err, &ve) || ve.Field != tc.field {
				t.Fatalf("expected validation error on %s, got %v", tc.field, err)
			}
		})
	}
}

func TestBookingUseCase_Request_SlotTaken(t *testing.T) {
	uc, m := newBookingUseCase(t)
	req := bookingAt(10, 2)

	m.calendar.EXPECT().ListEvents(gomock.Any(), entities.StudioBig, req.Interval.Start, req.Interval.End).Return([]entities.BusySlot{
		{Studio: entities.StudioBig, Interval: entities.TimeInterval{Start: req.Interval.Start.Add(-time.Hour), End: req.Interval.Start.Add(time.Minute)}},
	}, nil)

	_, err := uc.Request(context.Background(), req)
	if !entities.IsConflict(err) || !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("expected slot conflict, got %v", err)
	}
}

func TestBookingUseCase_Request_CalendarDown(t *testing.T) {
	uc, m := newBookingUseCase(t)
	req := bookingAt(10, 2)

	m.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("503"))

	_, err := uc.Request(context.Background(), req)
	if !entities.IsDependency(err) {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestBookingUseCase_Request_UnknownPartner(t *testing.T) {
	uc, m := newBookingUseCase(t)
	req := bookingAt(10, 2)
	req.PartnerCode = "nobody"

	m.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.ledger.EXPECT().FindPartner(gomock.Any(), "nobody").Return(entities.PartnerQuota{}, nil)

	_, err := uc.Request(context.Background(), req)
	if !entities.IsValidation(err) || !errors.Is(err, ErrPartnerNotFound) {
		t.Fatalf("expected validation error for unknown partner, got %v", err)
	}
}

func TestBookingUseCase_Request_FullyCovered(t *testing.T) {
	uc, m := newBookingUseCase(t)
	req := bookingAt(10, 2)
	req.PartnerCode = "kol-a"
	req.InvoiceRequested = true

	// An event ending exactly at the requested start does not block it.
	m.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.BusySlot{
		{Studio: entities.StudioBig, Interval: entities.TimeInterval{Start: req.Interval.Start.Add(-time.Hour), End: req.Interval.Start}},
	}, nil)
	m.ledger.EXPECT().FindPartner(gomock.Any(), "kol-a").Return(entities.PartnerQuota{Code: "KOL-A", DisplayName: "Alice", HoursPerMonth: 10}, nil)
	m.ledger.EXPECT().ListUsage(gomock.Any(), "KOL-A", "2025-03").Return([]entities.UsageRecord{{Code: "KOL-A", YearMonth: "2025-03", HoursConsumed: 7}}, nil)
	m.calendar.EXPECT().CreateEvent(gomock.Any(), entities.StudioBig, gomock.Any()).DoAndReturn(func(_ context.Context, _ entities.Studio, in entities.ReservationRequest) (string, error) {
		if in.IdempotencyKey != "" {
			t.Fatalf("free booking has no order id, got %s", in.IdempotencyKey)
		}
		return "ev1", nil
	})
	m.ledger.EXPECT().AppendUsage(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec entities.UsageRecord) (entities.UsageRecord, error) {
		if rec.Code != "KOL-A" || rec.HoursConsumed != 2 || rec.ReservationReference != "ev1" || rec.YearMonth != "2025-03" || rec.Date != "2025-03-01" {
			t.Fatalf("unexpected usage record: %+v", rec)
		}
		return rec, nil
	})
	m.notifier.EXPECT().BookingConfirmed(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().InvoiceRequested(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	out, err := uc.Request(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != BookingCommitted || out.Reservation == nil || out.Reservation.ExternalReference != "ev1" {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if out.Coverage.FreeMinutes != 120 || out.Coverage.PayableMinutes != 0 || out.PartnerName != "Alice" {
		t.Fatalf("unexpected coverage: %+v", out)
	}
}

func TestBookingUseCase_Request_PartiallyCovered(t *testing.T) {
	uc, m := newBookingUseCase(t)
	req := bookingAt(10, 3)
	req.PartnerCode = "KOL-A"

	m.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.ledger.EXPECT().FindPartner(gomock.Any(), "KOL-A").Return(entities.PartnerQuota{Code: "KOL-A", HoursPerMonth: 10}, nil)
	m.ledger.EXPECT().ListUsage(gomock.Any(), "KOL-A", "2025-03").Return([]entities.UsageRecord{{Code: "KOL-A", YearMonth: "2025-03", HoursConsumed: 9}}, nil)
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error) {
		if o.Status != entities.PaymentOrderStatusPending || o.PaidMinutes != 120 || o.DurationMinutes != 180 || o.Amount != 1050 || o.PartnerCode != "KOL-A" {
			t.Fatalf("unexpected order: %+v", o)
		}
		return o, nil
	})
	m.gateway.EXPECT().BuildCheckout(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in entities.CheckoutRequest) (entities.CheckoutForm, error) {
		if in.Amount != 1050 || in.ReturnURL != "https://studio.example.com/v1/payments/ecpay/notify" {
			t.Fatalf("unexpected checkout request: %+v", in)
		}
		if !strings.HasSuffix(in.ItemName, " x 2h (tax incl.)") {
			t.Fatalf("expected paid hours and tax in item name, got %q", in.ItemName)
		}
		return entities.CheckoutForm{ActionURL: "https://gateway", Fields: map[string]string{"MerchantTradeNo": in.OrderID}}, nil
	})

	out, err := uc.Request(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != BookingPaymentRequired || out.Order == nil || out.Checkout == nil || out.Reservation != nil {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if out.Checkout.Fields["MerchantTradeNo"] != out.Order.OrderID {
		t.Fatalf("expected checkout to reference the order")
	}
}

func TestBookingUseCase_Request_NoPartnerUntaxed(t *testing.T) {
	uc, m := newBookingUseCase(t)
	uc.settings.IncludeTax = false
	req := bookingAt(10, 2)

	m.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error) {
		return o, nil
	})
	m.gateway.EXPECT().BuildCheckout(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in entities.CheckoutRequest) (entities.CheckoutForm, error) {
		if strings.Contains(in.ItemName, "tax") || !strings.HasSuffix(in.ItemName, " x 2h") {
			t.Fatalf("unexpected item name %q", in.ItemName)
		}
		return entities.CheckoutForm{}, nil
	})

	out, err := uc.Request(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Order.Amount != 1000 || out.Order.TaxIncluded {
		t.Fatalf("expected untaxed 1000, got %+v", out.Order)
	}
}

func TestBookingUseCase_Request_OrderStoreDown(t *testing.T) {
	uc, m := newBookingUseCase(t)
	req := bookingAt(10, 2)

	m.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentOrder{}, errors.New("dynamodb"))

	_, err := uc.Request(context.Background(), req)
	if !entities.IsDependency(err) {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestBookingUseCase_Request_ReservationFails(t *testing.T) {
	uc, m := newBookingUseCase(t)
	req := bookingAt(10, 1)
	req.PartnerCode = "KOL-A"

	m.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.ledger.EXPECT().FindPartner(gomock.Any(), "KOL-A").Return(entities.PartnerQuota{Code: "KOL-A", HoursPerMonth: 10}, nil)
	m.ledger.EXPECT().ListUsage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.calendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("quota exceeded"))

	_, err := uc.Request(context.Background(), req)
	if !entities.IsDependency(err) {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestBookingUseCase_BusySlots(t *testing.T) {
	uc, m := newBookingUseCase(t)
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.BusySlots(context.Background(), entities.StudioBig, from, from)
	if !entities.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	m.calendar.EXPECT().ListEvents(gomock.Any(), entities.StudioSmall, from, from.AddDate(0, 0, 7)).Return([]entities.BusySlot{{Studio: entities.StudioSmall}}, nil)
	got, err := uc.BusySlots(context.Background(), entities.StudioSmall, from, from.AddDate(0, 0, 7))
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected result: %+v %v", got, err)
	}
}

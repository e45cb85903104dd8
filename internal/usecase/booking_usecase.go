package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"studio_booking/internal/domain/entities"
	"studio_booking/internal/infrastructure/metrics"
	"studio_booking/internal/usecase/interfaces"
)

var (
	ErrMissingPayerName    = errors.New("name is required")
	ErrMissingPayerContact = errors.New("contact is required")
	ErrSlotUnavailable     = errors.New("requested slot is not available")
)

const collaboratorOrders = "orders"

type BookingStatus string

const (
	// BookingCommitted means the reservation exists and nothing is owed.
	BookingCommitted BookingStatus = "committed"
	// BookingPaymentRequired means a pending order was created and the
	// client must complete the checkout form.
	BookingPaymentRequired BookingStatus = "payment_required"
)

type BookingRequest struct {
	Studio           entities.Studio
	Interval         entities.TimeInterval
	Payer            entities.Payer
	Note             string
	InterviewGuests  string
	PartnerCode      string
	InvoiceRequested bool
}

type BookingOutcome struct {
	Status      BookingStatus
	Coverage    entities.Coverage
	PartnerName string
	Reservation *entities.Reservation
	Order       *entities.PaymentOrder
	Checkout    *entities.CheckoutForm
}

type IBookingUseCase interface {
	Request(ctx context.Context, req BookingRequest) (BookingOutcome, error)
	BusySlots(ctx context.Context, studio entities.Studio, from, to time.Time) ([]entities.BusySlot, error)
}

// BookingUseCase accepts a booking request, applies any partner quota and
// either commits the reservation immediately or opens a payment order.
type BookingUseCase struct {
	availability *SlotAvailability
	ledger       *QuotaLedger
	orders       interfaces.IPaymentOrderRepository
	gateway      interfaces.IPaymentGateway
	committer    *committer
	settings     Settings
	now          func() time.Time
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(
	calendar interfaces.ICalendar,
	ledger *QuotaLedger,
	orders interfaces.IPaymentOrderRepository,
	gateway interfaces.IPaymentGateway,
	notifier interfaces.INotifier,
	settings Settings,
) *BookingUseCase {
	return &BookingUseCase{
		availability: NewSlotAvailability(calendar, settings),
		ledger:       ledger,
		orders:       orders,
		gateway:      gateway,
		committer:    &committer{calendar: calendar, ledger: ledger, notifier: notifier, settings: settings},
		settings:     settings,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *BookingUseCase) Request(ctx context.Context, req BookingRequest) (BookingOutcome, error) {
	out, err := u.request(ctx, req)
	metrics.BookingRequest(bookingOutcomeLabel(out, err))
	return out, err
}

func (u *BookingUseCase) request(ctx context.Context, req BookingRequest) (BookingOutcome, error) {
	req.Payer.Name = strings.TrimSpace(req.Payer.Name)
	req.Payer.Contact = strings.TrimSpace(req.Payer.Contact)
	req.PartnerCode = strings.TrimSpace(req.PartnerCode)
	req.Note = strings.TrimSpace(req.Note)
	req.InterviewGuests = strings.TrimSpace(req.InterviewGuests)
	log.Printf("[booking][usecase] request start studio=%s start=%s end=%s partner_code=%q", req.Studio, req.Interval.Start.Format(time.RFC3339), req.Interval.End.Format(time.RFC3339), req.PartnerCode)

	if err := validateBookingRequest(req); err != nil {
		log.Printf("[booking][usecase] invalid request err=%v", err)
		return BookingOutcome{}, err
	}
	duration := req.Interval.DurationMinutes()
	if duration <= 0 {
		return BookingOutcome{}, entities.ValidationError{Field: "end", Err: entities.ErrInvalidInterval}
	}

	free, err := u.availability.IsFree(ctx, req.Studio, req.Interval)
	if err != nil {
		return BookingOutcome{}, err
	}
	if !free {
		return BookingOutcome{}, entities.ConflictError{Resource: "slot", Err: ErrSlotUnavailable}
	}

	var (
		remaining   float64
		partnerName string
	)
	if req.PartnerCode != "" {
		quota, err := u.ledger.Lookup(ctx, req.PartnerCode)
		if errors.Is(err, ErrPartnerNotFound) {
			return BookingOutcome{}, entities.ValidationError{Field: "partner_code", Msg: "unknown partner code", Err: err}
		}
		if err != nil {
			return BookingOutcome{}, err
		}
		req.PartnerCode = quota.Code
		partnerName = quota.DisplayName
		remaining, err = u.ledger.RemainingHours(ctx, quota, req.Interval.YearMonth(u.settings.location()))
		if err != nil {
			return BookingOutcome{}, err
		}
	}

	coverage := entities.ComputeCoverage(duration, remaining)
	log.Printf("[booking][usecase] coverage studio=%s total_min=%d free_min=%d payable_min=%d", req.Studio, coverage.TotalMinutes, coverage.FreeMinutes, coverage.PayableMinutes)

	if !coverage.NeedsPayment() {
		in := commitInput{
			Studio:           req.Studio,
			Interval:         req.Interval,
			Payer:            req.Payer,
			Note:             req.Note,
			InterviewGuests:  req.InterviewGuests,
			PartnerCode:      req.PartnerCode,
			DurationMinutes:  duration,
			InvoiceRequested: req.InvoiceRequested,
		}
		res, err := u.committer.commit(ctx, in)
		if err != nil {
			return BookingOutcome{}, err
		}
		u.committer.notify(ctx, in, res)
		log.Printf("[booking][usecase] committed without payment studio=%s ref=%s", req.Studio, res.ExternalReference)
		return BookingOutcome{Status: BookingCommitted, Coverage: coverage, PartnerName: partnerName, Reservation: &res}, nil
	}

	return u.openPaymentOrder(ctx, req, coverage, partnerName)
}

func (u *BookingUseCase) openPaymentOrder(ctx context.Context, req BookingRequest, coverage entities.Coverage, partnerName string) (BookingOutcome, error) {
	amount := entities.ComputeAmount(coverage.PayableMinutes, u.settings.HourlyRate, u.settings.IncludeTax)
	if amount < 1 {
		log.Printf("[booking][usecase] non-positive amount payable_min=%d rate=%d", coverage.PayableMinutes, u.settings.HourlyRate)
		return BookingOutcome{}, entities.ValidationError{Field: "amount", Err: entities.ErrNonPositiveAmount}
	}

	now := u.now()
	orderID, err := newOrderID(now)
	if err != nil {
		return BookingOutcome{}, err
	}

	order := entities.PaymentOrder{
		OrderID:          orderID,
		Studio:           req.Studio,
		Interval:         req.Interval,
		Payer:            req.Payer,
		Note:             req.Note,
		InterviewGuests:  req.InterviewGuests,
		PartnerCode:      req.PartnerCode,
		DurationMinutes:  coverage.TotalMinutes,
		PaidMinutes:      coverage.PayableMinutes,
		Amount:           amount,
		TaxIncluded:      u.settings.IncludeTax,
		InvoiceRequested: req.InvoiceRequested,
		Status:           entities.PaymentOrderStatusPending,
		CreatedAt:        now,
	}

	var created entities.PaymentOrder
	err = call(ctx, u.settings, collaboratorOrders, "create", func(ctx context.Context) error {
		var err error
		created, err = u.orders.Create(ctx, order)
		return err
	})
	if err != nil {
		log.Printf("[booking][usecase] order create failed order_id=%s err=%v", orderID, err)
		return BookingOutcome{}, err
	}

	form, err := u.gateway.BuildCheckout(ctx, entities.CheckoutRequest{
		OrderID:        created.OrderID,
		Amount:         created.Amount,
		ItemName:       checkoutItemName(created),
		TradeDate:      now,
		ReturnURL:      u.settings.BaseURL + "/v1/payments/ecpay/notify",
		OrderResultURL: u.settings.BaseURL + "/v1/payments/ecpay/result",
		ClientBackURL:  u.settings.BaseURL + "/booking",
	})
	if err != nil {
		log.Printf("[booking][usecase] checkout build failed order_id=%s err=%v", created.OrderID, err)
		return BookingOutcome{}, err
	}
	log.Printf("[booking][usecase] payment order opened order_id=%s amount=%d paid_min=%d", created.OrderID, created.Amount, created.PaidMinutes)

	return BookingOutcome{
		Status:      BookingPaymentRequired,
		Coverage:    coverage,
		PartnerName: partnerName,
		Order:       &created,
		Checkout:    &form,
	}, nil
}

func (u *BookingUseCase) BusySlots(ctx context.Context, studio entities.Studio, from, to time.Time) ([]entities.BusySlot, error) {
	if !studio.Valid() {
		return nil, entities.ValidationError{Field: "studio", Err: entities.ErrInvalidStudio}
	}
	if !to.After(from) {
		return nil, entities.ValidationError{Field: "to", Err: entities.ErrInvalidInterval}
	}
	return u.availability.Busy(ctx, studio, from, to)
}

func validateBookingRequest(req BookingRequest) error {
	if !req.Studio.Valid() {
		return entities.ValidationError{Field: "studio", Err: entities.ErrInvalidStudio}
	}
	if !req.Interval.Valid() {
		return entities.ValidationError{Field: "end", Err: entities.ErrInvalidInterval}
	}
	if req.Payer.Name == "" {
		return entities.ValidationError{Field: "name", Err: ErrMissingPayerName}
	}
	if req.Payer.Contact == "" {
		return entities.ValidationError{Field: "contact", Err: ErrMissingPayerContact}
	}
	return nil
}

func checkoutItemName(o entities.PaymentOrder) string {
	name := o.Studio.Label() + " x " + formatHours(o.PaidMinutes) + "h"
	if o.TaxIncluded {
		name += " (tax incl.)"
	}
	return name
}

func bookingOutcomeLabel(out BookingOutcome, err error) string {
	switch {
	case err == nil:
		return string(out.Status)
	case entities.IsValidation(err):
		return "rejected"
	case entities.IsConflict(err):
		return "conflict"
	case entities.IsDependency(err):
		return "dependency_error"
	default:
		return "error"
	}
}

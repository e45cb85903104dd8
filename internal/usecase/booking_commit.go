package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"studio_booking/internal/domain/entities"
	"studio_booking/internal/usecase/interfaces"
)

const collaboratorNotifier = "notifier"

// commitInput is everything needed to turn an accepted booking into a
// calendar reservation plus ledger line.
type commitInput struct {
	OrderID          string
	Studio           entities.Studio
	Interval         entities.TimeInterval
	Payer            entities.Payer
	Note             string
	InterviewGuests  string
	PartnerCode      string
	DurationMinutes  int64
	PaidMinutes      int64
	Amount           int64
	InvoiceRequested bool
}

func commitInputFromOrder(o entities.PaymentOrder) commitInput {
	return commitInput{
		OrderID:          o.OrderID,
		Studio:           o.Studio,
		Interval:         o.Interval,
		Payer:            o.Payer,
		Note:             o.Note,
		InterviewGuests:  o.InterviewGuests,
		PartnerCode:      o.PartnerCode,
		DurationMinutes:  o.DurationMinutes,
		PaidMinutes:      o.PaidMinutes,
		Amount:           o.Amount,
		InvoiceRequested: o.InvoiceRequested,
	}
}

// committer is shared by the free-booking path and payment settlement.
type committer struct {
	calendar interfaces.ICalendar
	ledger   *QuotaLedger
	notifier interfaces.INotifier
	settings Settings
}

// commit creates the reservation and records partner usage against it.
// The reservation is keyed by the order id when there is one so that a
// repeated commit finds the same entry. Notices are left to the caller,
// which sends them once the booking is final.
func (c *committer) commit(ctx context.Context, in commitInput) (entities.Reservation, error) {
	req := entities.ReservationRequest{
		Interval:       in.Interval,
		Title:          reservationTitle(in),
		Description:    reservationDescription(in),
		IdempotencyKey: in.OrderID,
	}

	var ref string
	err := call(ctx, c.settings, collaboratorCalendar, "create_event", func(ctx context.Context) error {
		var err error
		ref, err = c.calendar.CreateEvent(ctx, in.Studio, req)
		return err
	})
	if err != nil {
		log.Printf("[booking][commit] create reservation failed order_id=%s studio=%s err=%v", in.OrderID, in.Studio, err)
		return entities.Reservation{}, err
	}
	res := entities.Reservation{
		Studio:            in.Studio,
		Interval:          in.Interval,
		ExternalReference: ref,
		Title:             req.Title,
		Description:       req.Description,
	}
	log.Printf("[booking][commit] reservation created order_id=%s studio=%s ref=%s", in.OrderID, in.Studio, ref)

	if strings.TrimSpace(in.PartnerCode) != "" {
		loc := c.settings.location()
		rec := entities.UsageRecord{
			Code:                 strings.TrimSpace(in.PartnerCode),
			YearMonth:            in.Interval.YearMonth(loc),
			Date:                 in.Interval.Start.In(loc).Format("2006-01-02"),
			HoursConsumed:        entities.MinutesToHours(in.DurationMinutes),
			Studio:               in.Studio,
			ReservationReference: ref,
			Note:                 usageNote(in),
		}
		if _, err := c.ledger.Record(ctx, rec); err != nil {
			log.Printf("[booking][commit] usage record failed order_id=%s ref=%s err=%v", in.OrderID, ref, err)
			return res, err
		}
	}

	return res, nil
}

// notify sends best-effort notices; failures are only logged.
func (c *committer) notify(ctx context.Context, in commitInput, res entities.Reservation) {
	if c.notifier == nil {
		return
	}
	ref := res.ExternalReference
	n := entities.BookingNotice{
		OrderID:              in.OrderID,
		Studio:               in.Studio,
		StudioLabel:          in.Studio.Label(),
		Interval:             in.Interval,
		Payer:                in.Payer,
		Note:                 in.Note,
		InterviewGuests:      in.InterviewGuests,
		PartnerCode:          in.PartnerCode,
		DurationHours:        entities.MinutesToHours(in.DurationMinutes),
		PaidHours:            entities.MinutesToHours(in.PaidMinutes),
		Amount:               in.Amount,
		InvoiceRequested:     in.InvoiceRequested,
		ReservationReference: ref,
	}

	if err := call(ctx, c.settings, collaboratorNotifier, "booking_confirmed", func(ctx context.Context) error {
		return c.notifier.BookingConfirmed(ctx, n)
	}); err != nil {
		log.Printf("[booking][commit] confirmation notice failed ref=%s err=%v", ref, err)
	}
	if !in.InvoiceRequested {
		return
	}
	if err := call(ctx, c.settings, collaboratorNotifier, "invoice_requested", func(ctx context.Context) error {
		return c.notifier.InvoiceRequested(ctx, n)
	}); err != nil {
		log.Printf("[booking][commit] invoice notice failed ref=%s err=%v", ref, err)
	}
}

func reservationTitle(in commitInput) string {
	return fmt.Sprintf("Booking: %s", in.Payer.Name)
}

func reservationDescription(in commitInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", in.Payer.Name)
	fmt.Fprintf(&b, "Contact: %s\n", in.Payer.Contact)
	fmt.Fprintf(&b, "Studio: %s\n", in.Studio.Label())
	fmt.Fprintf(&b, "Hours: %s\n", formatHours(in.DurationMinutes))
	if in.PartnerCode != "" {
		fmt.Fprintf(&b, "Partner code: %s\n", in.PartnerCode)
	}
	if in.PaidMinutes > 0 {
		fmt.Fprintf(&b, "Paid hours: %s\n", formatHours(in.PaidMinutes))
		fmt.Fprintf(&b, "Amount: %d\n", in.Amount)
	}
	if in.OrderID != "" {
		fmt.Fprintf(&b, "Order: %s\n", in.OrderID)
	}
	if in.InterviewGuests != "" {
		fmt.Fprintf(&b, "Interview guests: %s\n", in.InterviewGuests)
	}
	if in.InvoiceRequested {
		b.WriteString("Invoice requested\n")
	}
	if in.Note != "" {
		fmt.Fprintf(&b, "Note: %s\n", in.Note)
	}
	return strings.TrimRight(b.String(), "\n")
}

func usageNote(in commitInput) string {
	if in.PaidMinutes == 0 {
		return fmt.Sprintf("booked by %s", in.Payer.Name)
	}
	return fmt.Sprintf("booked by %s, includes %sh paid (order %s)", in.Payer.Name, formatHours(in.PaidMinutes), in.OrderID)
}

func formatHours(minutes int64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", entities.MinutesToHours(minutes)), "0"), ".")
}

package response

import (
	"time"

	"studio_booking/internal/domain/entities"
	"studio_booking/internal/usecase"
)

type ReservationResponse struct {
	ID     string    `json:"id"`
	Studio string    `json:"studio"`
	Label  string    `json:"studio_label"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// PaymentRedirectResponse carries what the browser needs to auto-submit
// the hosted checkout form.
type PaymentRedirectResponse struct {
	OrderID       string            `json:"order_id"`
	Amount        int64             `json:"amount"`
	TaxIncluded   bool              `json:"tax_included"`
	FormActionURL string            `json:"form_action_url"`
	FormData      map[string]string `json:"form_data"`
}

type BookingResponse struct {
	Status       string                   `json:"status"`
	PartnerName  string                   `json:"partner_name,omitempty"`
	TotalHours   float64                  `json:"total_hours"`
	FreeHours    float64                  `json:"free_hours"`
	PayableHours float64                  `json:"payable_hours"`
	Reservation  *ReservationResponse     `json:"reservation,omitempty"`
	Payment      *PaymentRedirectResponse `json:"payment,omitempty"`
}

func FromBookingOutcome(o usecase.BookingOutcome) BookingResponse {
	resp := BookingResponse{
		Status:       string(o.Status),
		PartnerName:  o.PartnerName,
		TotalHours:   o.Coverage.TotalHours(),
		FreeHours:    o.Coverage.FreeHours(),
		PayableHours: o.Coverage.PayableHours(),
	}
	if o.Reservation != nil {
		r := FromReservation(*o.Reservation)
		resp.Reservation = &r
	}
	if o.Order != nil && o.Checkout != nil {
		resp.Payment = &PaymentRedirectResponse{
			OrderID:       o.Order.OrderID,
			Amount:        o.Order.Amount,
			TaxIncluded:   o.Order.TaxIncluded,
			FormActionURL: o.Checkout.ActionURL,
			FormData:      o.Checkout.Fields,
		}
	}
	return resp
}

func FromReservation(r entities.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:     r.ExternalReference,
		Studio: string(r.Studio),
		Label:  r.Studio.Label(),
		Start:  r.Interval.Start,
		End:    r.Interval.End,
	}
}

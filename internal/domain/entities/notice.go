package entities

// BookingNotice is the payload sent to the booker and the studio admin
// once a reservation is committed.
type BookingNotice struct {
	OrderID              string       `json:"order_id,omitempty"`
	Studio               Studio       `json:"studio"`
	StudioLabel          string       `json:"studio_label"`
	Interval             TimeInterval `json:"interval"`
	Payer                Payer        `json:"payer"`
	Note                 string       `json:"note,omitempty"`
	InterviewGuests      string       `json:"interview_guests,omitempty"`
	PartnerCode          string       `json:"partner_code,omitempty"`
	DurationHours        float64      `json:"duration_hours"`
	PaidHours            float64      `json:"paid_hours"`
	Amount               int64        `json:"amount"`
	InvoiceRequested     bool         `json:"invoice_requested"`
	ReservationReference string       `json:"reservation_reference"`
}

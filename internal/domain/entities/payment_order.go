package entities

import "time"

type PaymentOrderStatus string

const (
	PaymentOrderStatusPending   PaymentOrderStatus = "pending"
	PaymentOrderStatusCompleted PaymentOrderStatus = "completed"
)

// MaxOrderIDLength is the gateway's limit for merchant trade numbers.
const MaxOrderIDLength = 20

// Payer is the person who requested the booking.
type Payer struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// PaymentOrder is the pending-payment record that binds a gateway order id
// to the booking it will commit once payment succeeds.
//
// Storage model (DynamoDB):
//   - PK: order_id
type PaymentOrder struct {
	OrderID          string             `json:"order_id"`
	Studio           Studio             `json:"studio"`
	Interval         TimeInterval       `json:"interval"`
	Payer            Payer              `json:"payer"`
	Note             string             `json:"note,omitempty"`
	InterviewGuests  string             `json:"interview_guests,omitempty"`
	PartnerCode      string             `json:"partner_code,omitempty"`
	DurationMinutes  int64              `json:"duration_minutes"`
	PaidMinutes      int64              `json:"paid_minutes"`
	Amount           int64              `json:"amount"`
	TaxIncluded      bool               `json:"tax_included"`
	InvoiceRequested bool               `json:"invoice_requested"`
	Status           PaymentOrderStatus `json:"status"`
	CreatedAt        time.Time          `json:"created_at"`
	CompletedAt      time.Time          `json:"completed_at,omitempty"`
}

func (o PaymentOrder) DurationHours() float64 { return MinutesToHours(o.DurationMinutes) }
func (o PaymentOrder) PaidHours() float64     { return MinutesToHours(o.PaidMinutes) }

func (o PaymentOrder) IsCompleted() bool {
	return o.Status == PaymentOrderStatusCompleted
}

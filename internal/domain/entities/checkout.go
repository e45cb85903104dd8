package entities

import "time"

// CheckoutRequest carries what the gateway needs to build a hosted
// checkout form for one order.
type CheckoutRequest struct {
	OrderID        string
	Amount         int64
	ItemName       string
	TradeDate      time.Time
	ReturnURL      string
	OrderResultURL string
	ClientBackURL  string
}

// CheckoutForm is an auto-submitting HTML form target: the client posts
// Fields to ActionURL.
type CheckoutForm struct {
	ActionURL string            `json:"action_url"`
	Fields    map[string]string `json:"fields"`
}

package entities

import (
	"strings"
	"time"
)

// PartnerQuota is a partner's monthly entitlement of free studio hours.
type PartnerQuota struct {
	Code          string  `json:"code"`
	DisplayName   string  `json:"display_name"`
	HoursPerMonth float64 `json:"hours_per_month"`
}

// UsageRecord is one ledger line: hours drawn against a partner code.
// ReservationReference links the record to the calendar reservation it
// was booked for; it is empty for manual entries.
type UsageRecord struct {
	ID                   string    `json:"id"`
	Code                 string    `json:"code"`
	YearMonth            string    `json:"year_month"`
	Date                 string    `json:"date"`
	HoursConsumed        float64   `json:"hours_consumed"`
	Studio               Studio    `json:"studio"`
	ReservationReference string    `json:"reservation_reference,omitempty"`
	Note                 string    `json:"note,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// MonthlyRemaining is the remaining entitlement for one calendar month.
type MonthlyRemaining struct {
	YearMonth      string  `json:"year_month"`
	ConsumedHours  float64 `json:"consumed_hours"`
	RemainingHours float64 `json:"remaining_hours"`
}

// NormalizeCode is the comparison key for partner codes.
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

func SameCode(a, b string) bool {
	return NormalizeCode(a) == NormalizeCode(b)
}

package entities

import "math"

// Coverage splits a booking's duration into the part absorbed by the
// partner's remaining monthly quota and the part that must be paid.
//
// All quantities are whole minutes so that FreeMinutes+PayableMinutes
// always equals TotalMinutes exactly.
type Coverage struct {
	TotalMinutes   int64 `json:"total_minutes"`
	FreeMinutes    int64 `json:"free_minutes"`
	PayableMinutes int64 `json:"payable_minutes"`
}

func ComputeCoverage(totalMinutes int64, remainingHours float64) Coverage {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	remainingMinutes := int64(math.Round(math.Max(0, remainingHours) * 60))
	free := totalMinutes
	if remainingMinutes < free {
		free = remainingMinutes
	}
	return Coverage{
		TotalMinutes:   totalMinutes,
		FreeMinutes:    free,
		PayableMinutes: totalMinutes - free,
	}
}

func (c Coverage) TotalHours() float64   { return MinutesToHours(c.TotalMinutes) }
func (c Coverage) FreeHours() float64    { return MinutesToHours(c.FreeMinutes) }
func (c Coverage) PayableHours() float64 { return MinutesToHours(c.PayableMinutes) }

func (c Coverage) NeedsPayment() bool {
	return c.PayableMinutes > 0
}

// RemainingHours never goes below zero even when usage exceeds the quota.
func RemainingHours(hoursPerMonth, consumed float64) float64 {
	return math.Max(0, hoursPerMonth-consumed)
}

// ComputeAmount returns ceil(paid hours * rate), then ceil(x * 1.05) when
// tax is included, using integer arithmetic only.
func ComputeAmount(payableMinutes, hourlyRate int64, includeTax bool) int64 {
	if payableMinutes <= 0 || hourlyRate <= 0 {
		return 0
	}
	base := (payableMinutes*hourlyRate + 59) / 60
	if !includeTax {
		return base
	}
	return (base*105 + 99) / 100
}

func MinutesToHours(m int64) float64 {
	return float64(m) / 60
}

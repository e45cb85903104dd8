package response

import "studio_booking/internal/usecase"

type MonthlyQuotaResponse struct {
	YearMonth string  `json:"year_month"`
	Used      float64 `json:"used"`
	Remaining float64 `json:"remaining"`
}

type QuotaResponse struct {
	Code          string                 `json:"code"`
	Name          string                 `json:"name"`
	HoursPerMonth float64                `json:"hours_per_month"`
	Months        []MonthlyQuotaResponse `json:"months"`
}

func FromQuotaOverview(o usecase.QuotaOverview) QuotaResponse {
	months := make([]MonthlyQuotaResponse, 0, len(o.Months))
	for _, m := range o.Months {
		months = append(months, MonthlyQuotaResponse{
			YearMonth: m.YearMonth,
			Used:      m.ConsumedHours,
			Remaining: m.RemainingHours,
		})
	}
	return QuotaResponse{
		Code:          o.Partner.Code,
		Name:          o.Partner.DisplayName,
		HoursPerMonth: o.Partner.HoursPerMonth,
		Months:        months,
	}
}

type SweepResponse struct {
	Checked  int `json:"checked"`
	Reversed int `json:"reversed"`
}

func FromSweepResult(r usecase.SweepResult) SweepResponse {
	return SweepResponse{Checked: r.Checked, Reversed: r.Reversed}
}

package response

import (
	"time"

	"studio_booking/internal/domain/entities"
)

type BusySlotResponse struct {
	Studio string    `json:"studio"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	AllDay bool      `json:"all_day"`
}

type BusySlotsResponse struct {
	Studio string             `json:"studio"`
	From   time.Time          `json:"from"`
	To     time.Time          `json:"to"`
	Events []BusySlotResponse `json:"events"`
}

func FromBusySlots(studio entities.Studio, from, to time.Time, slots []entities.BusySlot) BusySlotsResponse {
	events := make([]BusySlotResponse, 0, len(slots))
	for _, s := range slots {
		events = append(events, BusySlotResponse{
			Studio: string(s.Studio),
			Start:  s.Interval.Start,
			End:    s.Interval.End,
			AllDay: s.AllDay,
		})
	}
	return BusySlotsResponse{Studio: string(studio), From: from, To: to, Events: events}
}

package usecase

import (
	"context"
	"log"
	"time"

	"studio_booking/internal/domain/entities"
	"studio_booking/internal/usecase/interfaces"
)

const collaboratorCalendar = "calendar"

// SlotAvailability decides whether a studio is free for an interval.
type SlotAvailability struct {
	calendar interfaces.ICalendar
	settings Settings
}

func NewSlotAvailability(calendar interfaces.ICalendar, settings Settings) *SlotAvailability {
	return &SlotAvailability{calendar: calendar, settings: settings}
}

// IsFree is false when any existing entry shares an instant with interval.
// Entries that merely touch the interval's edges do not block it.
func (s *SlotAvailability) IsFree(ctx context.Context, studio entities.Studio, interval entities.TimeInterval) (bool, error) {
	busy, err := s.Busy(ctx, studio, interval.Start, interval.End)
	if err != nil {
		return false, err
	}
	for _, b := range busy {
		if b.Interval.Overlaps(interval) {
			log.Printf("[availability][usecase] slot taken studio=%s start=%s end=%s by=%s..%s", studio, interval.Start.Format(time.RFC3339), interval.End.Format(time.RFC3339), b.Interval.Start.Format(time.RFC3339), b.Interval.End.Format(time.RFC3339))
			return false, nil
		}
	}
	return true, nil
}

func (s *SlotAvailability) Busy(ctx context.Context, studio entities.Studio, from, to time.Time) ([]entities.BusySlot, error) {
	var busy []entities.BusySlot
	err := call(ctx, s.settings, collaboratorCalendar, "list_events", func(ctx context.Context) error {
		var err error
		busy, err = s.calendar.ListEvents(ctx, studio, from, to)
		return err
	})
	if err != nil {
		log.Printf("[availability][usecase] list events failed studio=%s err=%v", studio, err)
		return nil, err
	}
	return busy, nil
}

package interfaces

import (
	"context"
	"time"

	"studio_booking/internal/domain/entities"
)

// ICalendar is the per-studio reservation calendar.
type ICalendar interface {
	// ListEvents returns every busy interval that intersects [from, to).
	// All-day entries are expanded to whole local days.
	ListEvents(ctx context.Context, studio entities.Studio, from, to time.Time) ([]entities.BusySlot, error)
	// CreateEvent returns the calendar's reference for the new entry. With an
	// idempotency key, repeating the call returns the original reference.
	CreateEvent(ctx context.Context, studio entities.Studio, req entities.ReservationRequest) (string, error)
	// EventExists is false when the entry was deleted or cancelled.
	EventExists(ctx context.Context, studio entities.Studio, reference string) (bool, error)
}

package calendar

import (
	"context"
	"sort"
	"sync"
	"time"

	"studio_booking/internal/domain/entities"
	"studio_booking/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// MemoryCalendar is an in-process calendar for local runs and tests.
type MemoryCalendar struct {
	mu     sync.RWMutex
	events map[entities.Studio]map[string]entities.Reservation
}

var _ interfaces.ICalendar = (*MemoryCalendar)(nil)

func NewMemoryCalendar() *MemoryCalendar {
	return &MemoryCalendar{events: make(map[entities.Studio]map[string]entities.Reservation)}
}

func (c *MemoryCalendar) ListEvents(_ context.Context, studio entities.Studio, from, to time.Time) ([]entities.BusySlot, error) {
	window := entities.TimeInterval{Start: from, End: to}
	c.mu.RLock()
	defer c.mu.RUnlock()

	var busy []entities.BusySlot
	for _, r := range c.events[studio] {
		if r.Interval.Overlaps(window) {
			busy = append(busy, entities.BusySlot{Studio: studio, Interval: r.Interval})
		}
	}
	sort.Slice(busy, func(i, j int) bool { return busy[i].Interval.Start.Before(busy[j].Interval.Start) })
	return busy, nil
}

func (c *MemoryCalendar) CreateEvent(_ context.Context, studio entities.Studio, req entities.ReservationRequest) (string, error) {
	ref := uuid.NewString()
	if req.IdempotencyKey != "" {
		ref = EventIDFromKey(req.IdempotencyKey)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.events[studio] == nil {
		c.events[studio] = make(map[string]entities.Reservation)
	}
	if _, ok := c.events[studio][ref]; ok {
		return ref, nil
	}
	c.events[studio][ref] = entities.Reservation{
		Studio:            studio,
		Interval:          req.Interval,
		ExternalReference: ref,
		Title:             req.Title,
		Description:       req.Description,
	}
	return ref, nil
}

func (c *MemoryCalendar) EventExists(_ context.Context, studio entities.Studio, reference string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.events[studio][reference]
	return ok, nil
}

// Delete removes an entry, as an operator would in the calendar UI.
func (c *MemoryCalendar) Delete(studio entities.Studio, reference string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.events[studio], reference)
}

func (c *MemoryCalendar) Count(studio entities.Studio) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.events[studio])
}

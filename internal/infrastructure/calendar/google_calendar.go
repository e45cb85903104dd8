package calendar

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"studio_booking/internal/domain/entities"
	"studio_booking/internal/usecase/interfaces"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
)

const (
	allDayLayout    = "2006-01-02"
	statusCancelled = "cancelled"
)

var ErrCalendarNotConfigured = errors.New("no calendar configured for studio")

// GoogleCalendar maps each studio to its own Google calendar.
type GoogleCalendar struct {
	svc      *gcal.Service
	ids      map[entities.Studio]string
	location *time.Location
}

var _ interfaces.ICalendar = (*GoogleCalendar)(nil)

func NewGoogleCalendar(svc *gcal.Service, ids map[entities.Studio]string, location *time.Location) *GoogleCalendar {
	if location == nil {
		location = time.UTC
	}
	return &GoogleCalendar{svc: svc, ids: ids, location: location}
}

func (c *GoogleCalendar) ListEvents(ctx context.Context, studio entities.Studio, from, to time.Time) ([]entities.BusySlot, error) {
	calID, err := c.calendarID(studio)
	if err != nil {
		return nil, err
	}

	var busy []entities.BusySlot
	err = c.svc.Events.List(calID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Pages(ctx, func(page *gcal.Events) error {
			for _, ev := range page.Items {
				if ev.Status == statusCancelled {
					continue
				}
				slot, ok, err := c.toBusySlot(studio, ev)
				if err != nil {
					return err
				}
				if ok {
					busy = append(busy, slot)
				}
			}
			return nil
		})
	if err != nil {
		return nil, err
	}
	return busy, nil
}

// CreateEvent derives the event id from the idempotency key, so a retry
// after a lost response hits a 409 and returns the existing reference.
func (c *GoogleCalendar) CreateEvent(ctx context.Context, studio entities.Studio, req entities.ReservationRequest) (string, error) {
	calID, err := c.calendarID(studio)
	if err != nil {
		return "", err
	}

	ev := &gcal.Event{
		Summary:     req.Title,
		Description: req.Description,
		Start: &gcal.EventDateTime{
			DateTime: req.Interval.Start.In(c.location).Format(time.RFC3339),
			TimeZone: c.location.String(),
		},
		End: &gcal.EventDateTime{
			DateTime: req.Interval.End.In(c.location).Format(time.RFC3339),
			TimeZone: c.location.String(),
		},
	}
	if req.IdempotencyKey != "" {
		ev.Id = EventIDFromKey(req.IdempotencyKey)
	}

	created, err := c.svc.Events.Insert(calID, ev).Context(ctx).Do()
	if err != nil {
		if ev.Id != "" && googleStatus(err) == http.StatusConflict {
			return ev.Id, nil
		}
		return "", err
	}
	return created.Id, nil
}

func (c *GoogleCalendar) EventExists(ctx context.Context, studio entities.Studio, reference string) (bool, error) {
	calID, err := c.calendarID(studio)
	if err != nil {
		return false, err
	}

	ev, err := c.svc.Events.Get(calID, reference).Context(ctx).Do()
	if err != nil {
		switch googleStatus(err) {
		case http.StatusNotFound, http.StatusGone:
			return false, nil
		}
		return false, err
	}
	return ev.Status != statusCancelled, nil
}

func (c *GoogleCalendar) calendarID(studio entities.Studio) (string, error) {
	id := c.ids[studio]
	if id == "" {
		return "", fmt.Errorf("%w: %s", ErrCalendarNotConfigured, studio)
	}
	return id, nil
}

// toBusySlot expands all-day entries to whole days in the studio's
// timezone. Google's all-day end date is exclusive.
func (c *GoogleCalendar) toBusySlot(studio entities.Studio, ev *gcal.Event) (entities.BusySlot, bool, error) {
	if ev.Start == nil || ev.End == nil {
		return entities.BusySlot{}, false, nil
	}

	if ev.Start.DateTime != "" {
		start, err := time.Parse(time.RFC3339, ev.Start.DateTime)
		if err != nil {
			return entities.BusySlot{}, false, fmt.Errorf("event %s start: %w", ev.Id, err)
		}
		end, err := time.Parse(time.RFC3339, ev.End.DateTime)
		if err != nil {
			return entities.BusySlot{}, false, fmt.Errorf("event %s end: %w", ev.Id, err)
		}
		return entities.BusySlot{Studio: studio, Interval: entities.TimeInterval{Start: start, End: end}}, true, nil
	}

	start, err := time.ParseInLocation(allDayLayout, ev.Start.Date, c.location)
	if err != nil {
		return entities.BusySlot{}, false, fmt.Errorf("event %s start date: %w", ev.Id, err)
	}
	end, err := time.ParseInLocation(allDayLayout, ev.End.Date, c.location)
	if err != nil || !end.After(start) {
		end = start.AddDate(0, 0, 1)
	}
	return entities.BusySlot{Studio: studio, Interval: entities.TimeInterval{Start: start, End: end}, AllDay: true}, true, nil
}

// EventIDFromKey maps an idempotency key to a valid Google event id
// (lower-case base32hex characters, at least five long).
func EventIDFromKey(key string) string {
	id := hex.EncodeToString([]byte(key))
	for len(id) < 5 {
		id += "0"
	}
	return id
}

func googleStatus(err error) int {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code
	}
	return 0
}

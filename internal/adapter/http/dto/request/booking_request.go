package request

import (
	"errors"
	"strings"
	"time"

	"studio_booking/internal/domain/entities"
	"studio_booking/internal/usecase"
)

var (
	ErrInvalidDate  = errors.New("dates must be formatted as yyyy-mm-dd")
	ErrInvalidRange = errors.New("to must not be before from")
)

const dateLayout = "2006-01-02"

// BookingRequest is the payload of POST /v1/bookings. Start and End are
// RFC 3339 timestamps.
type BookingRequest struct {
	Studio          string    `json:"studio"`
	Start           time.Time `json:"start" binding:"required"`
	End             time.Time `json:"end" binding:"required"`
	Name            string    `json:"name"`
	Contact         string    `json:"contact"`
	Note            string    `json:"note"`
	InterviewGuests string    `json:"interview_guests"`
	PartnerCode     string    `json:"partner_code"`
	Invoice         bool      `json:"invoice"`
}

func (r BookingRequest) ToBookingRequest() (usecase.BookingRequest, error) {
	studio, err := entities.ParseStudio(r.Studio)
	if err != nil {
		return usecase.BookingRequest{}, entities.ValidationError{Field: "studio", Msg: "unknown studio", Err: err}
	}
	return usecase.BookingRequest{
		Studio:   studio,
		Interval: entities.TimeInterval{Start: r.Start, End: r.End},
		Payer: entities.Payer{
			Name:    strings.TrimSpace(r.Name),
			Contact: strings.TrimSpace(r.Contact),
		},
		Note:             strings.TrimSpace(r.Note),
		InterviewGuests:  strings.TrimSpace(r.InterviewGuests),
		PartnerCode:      strings.TrimSpace(r.PartnerCode),
		InvoiceRequested: r.Invoice,
	}, nil
}

// BusySlotsQuery is the query string of GET /v1/calendar/events.
type BusySlotsQuery struct {
	Studio string `form:"studio"`
	From   string `form:"from" binding:"required"`
	To     string `form:"to" binding:"required"`
}

// Window resolves the query to [from 00:00, day after to 00:00) in loc, so
// the whole of the last day is included.
func (q BusySlotsQuery) Window(loc *time.Location) (entities.Studio, time.Time, time.Time, error) {
	studio, err := entities.ParseStudio(q.Studio)
	if err != nil {
		return "", time.Time{}, time.Time{}, entities.ValidationError{Field: "studio", Msg: "unknown studio", Err: err}
	}
	if loc == nil {
		loc = time.UTC
	}
	from, err := time.ParseInLocation(dateLayout, strings.TrimSpace(q.From), loc)
	if err != nil {
		return "", time.Time{}, time.Time{}, entities.ValidationError{Field: "from", Err: ErrInvalidDate}
	}
	to, err := time.ParseInLocation(dateLayout, strings.TrimSpace(q.To), loc)
	if err != nil {
		return "", time.Time{}, time.Time{}, entities.ValidationError{Field: "to", Err: ErrInvalidDate}
	}
	if to.Before(from) {
		return "", time.Time{}, time.Time{}, entities.ValidationError{Field: "to", Err: ErrInvalidRange}
	}
	return studio, from, to.AddDate(0, 0, 1), nil
}

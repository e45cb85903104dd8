package request

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"studio_booking/internal/domain/entities"
)

func TestBookingRequest_ToBookingRequest(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("defaults studio and trims fields", func(t *testing.T) {
		r := BookingRequest{
			Start:       start,
			End:         start.Add(time.Hour),
			Name:        "  Ann ",
			Contact:     " ann@example.com",
			PartnerCode: " KOL-A ",
			Invoice:     true,
		}
		got, err := r.ToBookingRequest()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Studio != entities.StudioBig {
			t.Fatalf("expected big studio, got %s", got.Studio)
		}
		if got.Payer.Name != "Ann" || got.Payer.Contact != "ann@example.com" || got.PartnerCode != "KOL-A" {
			t.Fatalf("unexpected request: %+v", got)
		}
		if !got.InvoiceRequested || !got.Interval.End.Equal(start.Add(time.Hour)) {
			t.Fatalf("unexpected request: %+v", got)
		}
	})

	t.Run("unknown studio", func(t *testing.T) {
		_, err := BookingRequest{Studio: "attic", Start: start, End: start.Add(time.Hour)}.ToBookingRequest()
		if !entities.IsValidation(err) || !errors.Is(err, entities.ErrInvalidStudio) {
			t.Fatalf("expected invalid studio, got %v", err)
		}
	})
}

func TestBusySlotsQuery_Window(t *testing.T) {
	taipei, err := time.LoadLocation("Asia/Taipei")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("covers whole last day", func(t *testing.T) {
		studio, from, to, err := BusySlotsQuery{Studio: "small", From: "2025-03-01", To: "2025-03-07"}.Window(taipei)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if studio != entities.StudioSmall {
			t.Fatalf("expected small, got %s", studio)
		}
		if want := time.Date(2025, 2, 28, 16, 0, 0, 0, time.UTC); !from.Equal(want) {
			t.Fatalf("expected %v, got %v", want, from)
		}
		if want := time.Date(2025, 3, 7, 16, 0, 0, 0, time.UTC); !to.Equal(want) {
			t.Fatalf("expected %v, got %v", want, to)
		}
	})

	cases := []struct {
		name  string
		query BusySlotsQuery
		want  error
	}{
		{"bad from", BusySlotsQuery{From: "03/01/2025", To: "2025-03-07"}, ErrInvalidDate},
		{"bad to", BusySlotsQuery{From: "2025-03-01", To: "tomorrow"}, ErrInvalidDate},
		{"reversed", BusySlotsQuery{From: "2025-03-07", To: "2025-03-01"}, ErrInvalidRange},
		{"bad studio", BusySlotsQuery{Studio: "roof", From: "2025-03-01", To: "2025-03-07"}, entities.ErrInvalidStudio},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := tc.query.Window(taipei)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

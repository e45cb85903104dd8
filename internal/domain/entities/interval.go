package entities

import "time"

// TimeInterval is a half-open range [Start, End).
type TimeInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return TimeInterval{}, ErrInvalidInterval
	}
	return TimeInterval{Start: start, End: end}, nil
}

func (i TimeInterval) Valid() bool {
	return !i.Start.IsZero() && i.End.After(i.Start)
}

// Overlaps reports whether the two intervals share any instant.
// Touching intervals do not overlap.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return other.Start.Before(i.End) && other.End.After(i.Start)
}

// DurationMinutes is the length rounded to the nearest whole minute.
func (i TimeInterval) DurationMinutes() int64 {
	return int64(i.End.Sub(i.Start).Round(time.Minute) / time.Minute)
}

// YearMonth is the "YYYY-MM" of the start instant in loc.
func (i TimeInterval) YearMonth(loc *time.Location) string {
	return YearMonthOf(i.Start, loc)
}

func YearMonthOf(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("2006-01")
}

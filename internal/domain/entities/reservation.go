package entities

// Reservation is a committed calendar entry for a studio.
type Reservation struct {
	Studio            Studio       `json:"studio"`
	Interval          TimeInterval `json:"interval"`
	ExternalReference string       `json:"external_reference"`
	Title             string       `json:"title"`
	Description       string       `json:"description,omitempty"`
}

// ReservationRequest is what the calendar needs to create an entry.
// IdempotencyKey, when set, makes repeated creation return the same entry.
type ReservationRequest struct {
	Interval       TimeInterval
	Title          string
	Description    string
	IdempotencyKey string
}

// BusySlot is an occupied interval as listed by the calendar.
type BusySlot struct {
	Studio   Studio       `json:"studio"`
	Interval TimeInterval `json:"interval"`
	AllDay   bool         `json:"all_day"`
}

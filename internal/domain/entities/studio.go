package entities

import "strings"

// Studio identifies one bookable room. Each studio has its own calendar.
type Studio string

const (
	StudioBig   Studio = "big"
	StudioSmall Studio = "small"
)

var studioLabels = map[Studio]string{
	StudioBig:   "Studio - Large Room",
	StudioSmall: "Studio - Small Room",
}

// ParseStudio defaults to the large room when the value is empty.
func ParseStudio(raw string) (Studio, error) {
	s := Studio(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return StudioBig, nil
	}
	if _, ok := studioLabels[s]; !ok {
		return "", ErrInvalidStudio
	}
	return s, nil
}

func (s Studio) Label() string {
	return studioLabels[s]
}

func (s Studio) Valid() bool {
	_, ok := studioLabels[s]
	return ok
}

func Studios() []Studio {
	return []Studio{StudioBig, StudioSmall}
}

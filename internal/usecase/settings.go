package usecase

import (
	"context"
	"time"

	"studio_booking/internal/config"
	"studio_booking/internal/domain/entities"
	"studio_booking/internal/infrastructure/metrics"
)

const defaultCollaboratorTimeout = 10 * time.Second

// Settings are the runtime knobs the use cases need from config.
type Settings struct {
	Location            *time.Location
	MonthsAhead         int
	HourlyRate          int64
	IncludeTax          bool
	Sandbox             bool
	BaseURL             string
	TradeDesc           string
	CollaboratorTimeout time.Duration
}

func SettingsFromConfig(c config.Config) Settings {
	return Settings{
		Location:            c.Location(),
		MonthsAhead:         c.MonthsAhead,
		HourlyRate:          c.HourlyRate,
		IncludeTax:          c.IncludeTax,
		Sandbox:             c.Sandbox,
		BaseURL:             c.BaseURL,
		TradeDesc:           c.TradeDesc,
		CollaboratorTimeout: c.CollaboratorTimeout,
	}
}

func (s Settings) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

func (s Settings) timeout() time.Duration {
	if s.CollaboratorTimeout <= 0 {
		return defaultCollaboratorTimeout
	}
	return s.CollaboratorTimeout
}

// call runs fn against an external collaborator with a bounded context and
// wraps any failure in a DependencyError.
func call(ctx context.Context, s Settings, collaborator, op string, fn func(ctx context.Context) error) error {
	cctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	started := time.Now()
	err := fn(cctx)
	metrics.ObserveCollaborator(collaborator, op, started, err)
	if err != nil {
		return entities.DependencyError{Collaborator: collaborator, Op: op, Err: err}
	}
	return nil
}

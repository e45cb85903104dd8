// Package google builds authenticated clients for the Calendar and Sheets
// APIs from a service-account credential.
package google

import (
	"context"
	"errors"

	"studio_booking/internal/config"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var ErrMissingCredentials = errors.New("missing google credentials")

func clientOptions(c config.Config, scopes ...string) ([]option.ClientOption, error) {
	opts := []option.ClientOption{option.WithScopes(scopes...)}
	switch {
	case c.GoogleCredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(c.GoogleCredentialsJSON)))
	case c.GoogleCredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(c.GoogleCredentialsFile))
	default:
		return nil, ErrMissingCredentials
	}
	return opts, nil
}

func NewCalendarService(ctx context.Context, c config.Config) (*calendar.Service, error) {
	opts, err := clientOptions(c, calendar.CalendarEventsScope)
	if err != nil {
		return nil, err
	}
	return calendar.NewService(ctx, opts...)
}

func NewSheetsService(ctx context.Context, c config.Config) (*sheets.Service, error) {
	opts, err := clientOptions(c, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, err
	}
	return sheets.NewService(ctx, opts...)
}

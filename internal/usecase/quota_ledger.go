package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"studio_booking/internal/domain/entities"
	"studio_booking/internal/usecase/interfaces"
)

var (
	ErrPartnerNotFound     = errors.New("partner code not found")
	ErrInvalidUsageRecord  = errors.New("invalid usage record")
	ErrMissingReservations = errors.New("no reservation references given")
)

const collaboratorLedger = "ledger"

// QuotaOverview is a partner's remaining entitlement for the current month
// and the configured number of months ahead.
type QuotaOverview struct {
	Partner entities.PartnerQuota       `json:"partner"`
	Months  []entities.MonthlyRemaining `json:"months"`
}

// IQuotaLedger answers "how many free hours does this partner have left"
// and records or reverses usage.
type IQuotaLedger interface {
	Lookup(ctx context.Context, code string) (entities.PartnerQuota, error)
	ConsumedHours(ctx context.Context, code, yearMonth string) (float64, error)
	RemainingHours(ctx context.Context, quota entities.PartnerQuota, yearMonth string) (float64, error)
	Record(ctx context.Context, rec entities.UsageRecord) (entities.UsageRecord, error)
	ListReferenced(ctx context.Context) ([]entities.UsageRecord, error)
	Reverse(ctx context.Context, refs ...string) (int, error)
	Overview(ctx context.Context, code string, now time.Time) (QuotaOverview, error)
}

type QuotaLedger struct {
	repo     interfaces.IQuotaLedgerRepository
	settings Settings
}

var _ IQuotaLedger = (*QuotaLedger)(nil)

func NewQuotaLedger(repo interfaces.IQuotaLedgerRepository, settings Settings) *QuotaLedger {
	return &QuotaLedger{repo: repo, settings: settings}
}

func (l *QuotaLedger) Lookup(ctx context.Context, code string) (entities.PartnerQuota, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.PartnerQuota{}, entities.ValidationError{Field: "partner_code", Err: entities.ErrInvalidPartnerCode}
	}

	var quota entities.PartnerQuota
	err := call(ctx, l.settings, collaboratorLedger, "find_partner", func(ctx context.Context) error {
		var err error
		quota, err = l.repo.FindPartner(ctx, code)
		return err
	})
	if err != nil {
		log.Printf("[ledger][usecase] lookup failed code=%q err=%v", code, err)
		return entities.PartnerQuota{}, err
	}
	if quota.Code == "" {
		log.Printf("[ledger][usecase] partner not found code=%q", code)
		return entities.PartnerQuota{}, ErrPartnerNotFound
	}
	return quota, nil
}

func (l *QuotaLedger) ConsumedHours(ctx context.Context, code, yearMonth string) (float64, error) {
	var records []entities.UsageRecord
	err := call(ctx, l.settings, collaboratorLedger, "list_usage", func(ctx context.Context) error {
		var err error
		records, err = l.repo.ListUsage(ctx, code, yearMonth)
		return err
	})
	if err != nil {
		log.Printf("[ledger][usecase] list usage failed code=%q year_month=%s err=%v", code, yearMonth, err)
		return 0, err
	}

	var total float64
	for _, r := range records {
		if !entities.SameCode(r.Code, code) || r.YearMonth != yearMonth {
			continue
		}
		total += r.HoursConsumed
	}
	return total, nil
}

func (l *QuotaLedger) RemainingHours(ctx context.Context, quota entities.PartnerQuota, yearMonth string) (float64, error) {
	consumed, err := l.ConsumedHours(ctx, quota.Code, yearMonth)
	if err != nil {
		return 0, err
	}
	return entities.RemainingHours(quota.HoursPerMonth, consumed), nil
}

// Record appends one usage line. Recording the same reservation twice
// leaves a single line.
func (l *QuotaLedger) Record(ctx context.Context, rec entities.UsageRecord) (entities.UsageRecord, error) {
	if strings.TrimSpace(rec.Code) == "" || rec.YearMonth == "" || rec.HoursConsumed <= 0 {
		return entities.UsageRecord{}, ErrInvalidUsageRecord
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	var stored entities.UsageRecord
	err := call(ctx, l.settings, collaboratorLedger, "append_usage", func(ctx context.Context) error {
		var err error
		stored, err = l.repo.AppendUsage(ctx, rec)
		return err
	})
	if err != nil {
		log.Printf("[ledger][usecase] record failed code=%q ref=%s err=%v", rec.Code, rec.ReservationReference, err)
		return entities.UsageRecord{}, err
	}
	log.Printf("[ledger][usecase] recorded code=%q year_month=%s hours=%.2f ref=%s", stored.Code, stored.YearMonth, stored.HoursConsumed, stored.ReservationReference)
	return stored, nil
}

func (l *QuotaLedger) ListReferenced(ctx context.Context) ([]entities.UsageRecord, error) {
	var records []entities.UsageRecord
	err := call(ctx, l.settings, collaboratorLedger, "list_referenced", func(ctx context.Context) error {
		var err error
		records, err = l.repo.ListReferencedUsage(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Reverse deletes every usage record linked to one of refs.
func (l *QuotaLedger) Reverse(ctx context.Context, refs ...string) (int, error) {
	cleaned := make([]string, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))
	for _, r := range refs {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		cleaned = append(cleaned, r)
	}
	if len(cleaned) == 0 {
		return 0, ErrMissingReservations
	}

	var removed int
	err := call(ctx, l.settings, collaboratorLedger, "delete_usage", func(ctx context.Context) error {
		var err error
		removed, err = l.repo.DeleteUsageByReferences(ctx, cleaned)
		return err
	})
	if err != nil {
		log.Printf("[ledger][usecase] reverse failed refs=%d err=%v", len(cleaned), err)
		return 0, err
	}
	log.Printf("[ledger][usecase] reversed refs=%d removed=%d", len(cleaned), removed)
	return removed, nil
}

// Overview reports the remaining hours for the month containing now and
// the following MonthsAhead months.
func (l *QuotaLedger) Overview(ctx context.Context, code string, now time.Time) (QuotaOverview, error) {
	quota, err := l.Lookup(ctx, code)
	if err != nil {
		return QuotaOverview{}, err
	}

	local := now.In(l.settings.location())
	first := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, l.settings.location())
	months := make([]entities.MonthlyRemaining, 0, l.settings.MonthsAhead+1)
	for i := 0; i <= l.settings.MonthsAhead; i++ {
		ym := first.AddDate(0, i, 0).Format("2006-01")
		consumed, err := l.ConsumedHours(ctx, quota.Code, ym)
		if err != nil {
			return QuotaOverview{}, fmt.Errorf("month %s: %w", ym, err)
		}
		months = append(months, entities.MonthlyRemaining{
			YearMonth:      ym,
			ConsumedHours:  consumed,
			RemainingHours: entities.RemainingHours(quota.HoursPerMonth, consumed),
		})
	}
	return QuotaOverview{Partner: quota, Months: months}, nil
}

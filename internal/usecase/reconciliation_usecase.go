package usecase

import (
	"context"
	"errors"
	"log"

	"studio_booking/internal/domain/entities"
	"studio_booking/internal/infrastructure/metrics"
	"studio_booking/internal/usecase/interfaces"

	"golang.org/x/sync/semaphore"
)

var ErrSweepInProgress = errors.New("reconciliation already running")

type SweepResult struct {
	Checked  int `json:"checked"`
	Reversed int `json:"reversed"`
}

type IReconciliationUseCase interface {
	Sweep(ctx context.Context) (SweepResult, error)
}

// ReconciliationUseCase removes ledger usage whose reservation no longer
// exists in the calendar, returning the hours to the partner's quota.
type ReconciliationUseCase struct {
	calendar interfaces.ICalendar
	ledger   *QuotaLedger
	settings Settings
	running  *semaphore.Weighted
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(calendar interfaces.ICalendar, ledger *QuotaLedger, settings Settings) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		calendar: calendar,
		ledger:   ledger,
		settings: settings,
		running:  semaphore.NewWeighted(1),
	}
}

// Sweep checks every referenced usage record. A reservation whose existence
// cannot be determined is kept. Only one sweep runs at a time.
func (u *ReconciliationUseCase) Sweep(ctx context.Context) (SweepResult, error) {
	if !u.running.TryAcquire(1) {
		return SweepResult{}, entities.ConflictError{Resource: "reconciliation", Err: ErrSweepInProgress}
	}
	defer u.running.Release(1)

	records, err := u.ledger.ListReferenced(ctx)
	if err != nil {
		log.Printf("[reconcile][usecase] list referenced usage failed err=%v", err)
		return SweepResult{}, err
	}
	log.Printf("[reconcile][usecase] sweep start records=%d", len(records))

	checked := make(map[string]bool, len(records))
	var missing []string
	for _, rec := range records {
		ref := rec.ReservationReference
		if _, done := checked[ref]; done {
			continue
		}
		exists := u.exists(ctx, rec)
		checked[ref] = exists
		if !exists {
			missing = append(missing, ref)
		}
	}

	result := SweepResult{Checked: len(records)}
	if len(missing) == 0 {
		log.Printf("[reconcile][usecase] sweep done checked=%d reversed=0", result.Checked)
		return result, nil
	}

	removed, err := u.ledger.Reverse(ctx, missing...)
	if err != nil {
		log.Printf("[reconcile][usecase] reverse failed missing=%d err=%v", len(missing), err)
		return result, err
	}
	result.Reversed = removed
	metrics.ReconcileReversed(removed)
	log.Printf("[reconcile][usecase] sweep done checked=%d reversed=%d", result.Checked, result.Reversed)
	return result, nil
}

// exists looks the reference up in the record's studio calendar, or in every
// calendar when the record carries no usable studio.
func (u *ReconciliationUseCase) exists(ctx context.Context, rec entities.UsageRecord) bool {
	studios := []entities.Studio{rec.Studio}
	if !rec.Studio.Valid() {
		studios = entities.Studios()
	}

	for _, s := range studios {
		var found bool
		err := call(ctx, u.settings, collaboratorCalendar, "event_exists", func(ctx context.Context) error {
			var err error
			found, err = u.calendar.EventExists(ctx, s, rec.ReservationReference)
			return err
		})
		if err != nil {
			log.Printf("[reconcile][usecase] existence unknown, keeping ref=%s studio=%s err=%v", rec.ReservationReference, s, err)
			return true
		}
		if found {
			return true
		}
	}
	return false
}

package repository

import (
	"context"
	"sort"
	"sync"

	"studio_booking/internal/domain/entities"
	"studio_booking/internal/usecase/interfaces"
)

// QuotaLedgerMemoryRepository keeps the ledger as an ordered list and
// deletes by position, like a spreadsheet.
type QuotaLedgerMemoryRepository struct {
	mu       sync.RWMutex
	partners map[string]entities.PartnerQuota
	usage    []entities.UsageRecord
}

var _ interfaces.IQuotaLedgerRepository = (*QuotaLedgerMemoryRepository)(nil)

func NewQuotaLedgerMemoryRepository(partners ...entities.PartnerQuota) *QuotaLedgerMemoryRepository {
	r := &QuotaLedgerMemoryRepository{partners: make(map[string]entities.PartnerQuota, len(partners))}
	for _, p := range partners {
		r.partners[entities.NormalizeCode(p.Code)] = p
	}
	return r
}

func (r *QuotaLedgerMemoryRepository) FindPartner(_ context.Context, code string) (entities.PartnerQuota, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.partners[entities.NormalizeCode(code)], nil
}

func (r *QuotaLedgerMemoryRepository) ListUsage(_ context.Context, code, yearMonth string) ([]entities.UsageRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entities.UsageRecord
	for _, u := range r.usage {
		if entities.SameCode(u.Code, code) && u.YearMonth == yearMonth {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *QuotaLedgerMemoryRepository) AppendUsage(_ context.Context, rec entities.UsageRecord) (entities.UsageRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec.ReservationReference != "" {
		for _, u := range r.usage {
			if u.ReservationReference == rec.ReservationReference {
				return u, nil
			}
		}
	}
	if rec.ID == "" {
		id, err := newRecordID(rec.CreatedAt)
		if err != nil {
			return entities.UsageRecord{}, err
		}
		rec.ID = id
	}
	r.usage = append(r.usage, rec)
	return rec, nil
}

func (r *QuotaLedgerMemoryRepository) ListReferencedUsage(_ context.Context) ([]entities.UsageRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entities.UsageRecord
	for _, u := range r.usage {
		if u.ReservationReference != "" {
			out = append(out, u)
		}
	}
	return out, nil
}

// DeleteUsageByReferences collects every matching position first and then
// removes them from the highest down so earlier positions stay valid.
func (r *QuotaLedgerMemoryRepository) DeleteUsageByReferences(_ context.Context, refs []string) (int, error) {
	set := refSet(refs)
	r.mu.Lock()
	defer r.mu.Unlock()

	var positions []int
	for i, u := range r.usage {
		if _, ok := set[u.ReservationReference]; ok {
			positions = append(positions, i)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(positions)))
	for _, p := range positions {
		r.usage = append(r.usage[:p], r.usage[p+1:]...)
	}
	return len(positions), nil
}

// Usage returns a copy of the ledger in order.
func (r *QuotaLedgerMemoryRepository) Usage() []entities.UsageRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.UsageRecord, len(r.usage))
	copy(out, r.usage)
	return out
}

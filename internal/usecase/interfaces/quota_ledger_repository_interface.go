package interfaces

import (
	"context"

	"studio_booking/internal/domain/entities"
)

// IQuotaLedgerRepository stores partner quotas and the usage ledger.
//
// FindPartner returns a zero PartnerQuota when the code is unknown.
// Codes are compared case-insensitively.
type IQuotaLedgerRepository interface {
	FindPartner(ctx context.Context, code string) (entities.PartnerQuota, error)
	ListUsage(ctx context.Context, code, yearMonth string) ([]entities.UsageRecord, error)
	// AppendUsage is a no-op returning the stored record when a record with
	// the same non-empty ReservationReference already exists.
	AppendUsage(ctx context.Context, rec entities.UsageRecord) (entities.UsageRecord, error)
	ListReferencedUsage(ctx context.Context) ([]entities.UsageRecord, error)
	// DeleteUsageByReferences removes every record whose reference is in
	// refs and returns how many were removed.
	DeleteUsageByReferences(ctx context.Context, refs []string) (int, error)
}

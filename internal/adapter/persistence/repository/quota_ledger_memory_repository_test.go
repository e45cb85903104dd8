package repository

import (
	"context"
	"testing"

	"studio_booking/internal/domain/entities"
)

func TestQuotaLedgerMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("find partner is case insensitive", func(t *testing.T) {
		r := NewQuotaLedgerMemoryRepository(entities.PartnerQuota{Code: "KOL-A", DisplayName: "A", HoursPerMonth: 10})
		p, err := r.FindPartner(ctx, " kol-a ")
		if err != nil || p.Code != "KOL-A" {
			t.Fatalf("expected KOL-A, got %+v %v", p, err)
		}
		p, _ = r.FindPartner(ctx, "nobody")
		if p.Code != "" {
			t.Fatalf("expected zero partner, got %+v", p)
		}
	})

	t.Run("append is idempotent per reservation", func(t *testing.T) {
		r := NewQuotaLedgerMemoryRepository()
		rec := entities.UsageRecord{Code: "kol-a", YearMonth: "2025-03", HoursConsumed: 2, ReservationReference: "ev1"}
		first, err := r.AppendUsage(ctx, rec)
		if err != nil || first.ID == "" {
			t.Fatalf("unexpected append result: %+v %v", first, err)
		}
		second, err := r.AppendUsage(ctx, rec)
		if err != nil || second.ID != first.ID {
			t.Fatalf("expected same record, got %+v %v", second, err)
		}
		if len(r.Usage()) != 1 {
			t.Fatalf("expected 1 record, got %d", len(r.Usage()))
		}
	})

	t.Run("list usage filters by code and month", func(t *testing.T) {
		r := NewQuotaLedgerMemoryRepository()
		_, _ = r.AppendUsage(ctx, entities.UsageRecord{Code: "KOL-A", YearMonth: "2025-03", HoursConsumed: 1})
		_, _ = r.AppendUsage(ctx, entities.UsageRecord{Code: "kol-a", YearMonth: "2025-04", HoursConsumed: 2})
		_, _ = r.AppendUsage(ctx, entities.UsageRecord{Code: "kol-b", YearMonth: "2025-03", HoursConsumed: 4})

		got, _ := r.ListUsage(ctx, "Kol-A", "2025-03")
		if len(got) != 1 || got[0].HoursConsumed != 1 {
			t.Fatalf("unexpected usage: %+v", got)
		}
	})

	t.Run("delete removes every matching row and keeps the rest in order", func(t *testing.T) {
		r := NewQuotaLedgerMemoryRepository()
		for _, ref := range []string{"a", "gone1", "b", "gone2", "", "c", "gone3"} {
			_, _ = r.AppendUsage(ctx, entities.UsageRecord{Code: "k", YearMonth: "2025-03", HoursConsumed: 1, ReservationReference: ref})
		}

		n, err := r.DeleteUsageByReferences(ctx, []string{"gone1", "gone2", "gone3"})
		if err != nil || n != 3 {
			t.Fatalf("expected 3 removed, got %d %v", n, err)
		}
		var refs []string
		for _, u := range r.Usage() {
			refs = append(refs, u.ReservationReference)
		}
		want := []string{"a", "b", "", "c"}
		if len(refs) != len(want) {
			t.Fatalf("expected %v, got %v", want, refs)
		}
		for i := range want {
			if refs[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, refs)
			}
		}

		referenced, _ := r.ListReferencedUsage(ctx)
		if len(referenced) != 3 {
			t.Fatalf("expected 3 referenced, got %d", len(referenced))
		}
	})
}

func TestPaymentOrderMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewPaymentOrderMemoryRepository()

	o := entities.PaymentOrder{OrderID: "STB1", Status: entities.PaymentOrderStatusPending, Amount: 1050}
	if _, err := r.Create(ctx, o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Create(ctx, o); err != ErrOrderExists {
		t.Fatalf("expected ErrOrderExists, got %v", err)
	}

	moved, err := r.MarkCompleted(ctx, "STB1", o.CreatedAt)
	if err != nil || !moved {
		t.Fatalf("expected first completion to move, got %v %v", moved, err)
	}
	moved, err = r.MarkCompleted(ctx, "STB1", o.CreatedAt)
	if err != nil || moved {
		t.Fatalf("expected second completion to be a no-op, got %v %v", moved, err)
	}
	moved, _ = r.MarkCompleted(ctx, "missing", o.CreatedAt)
	if moved {
		t.Fatalf("expected missing order not to move")
	}

	got, _ := r.GetByID(ctx, "STB1")
	if !got.IsCompleted() {
		t.Fatalf("expected completed order, got %+v", got)
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"studio_booking/internal/domain/entities"
	mock_interfaces "studio_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testSettings() Settings {
	return Settings{
		Location:            time.UTC,
		MonthsAhead:         3,
		HourlyRate:          500,
		IncludeTax:          true,
		Sandbox:             true,
		BaseURL:             "https://studio.example.com",
		TradeDesc:           "Studio booking",
		CollaboratorTimeout: time.Second,
	}
}

func TestQuotaLedger_Lookup(t *testing.T) {
	t.Run("empty code", func(t *testing.T) {
		l := NewQuotaLedger(nil, testSettings())
		_, err := l.Lookup(context.Background(), "  ")
		if !errors.Is(err, entities.ErrInvalidPartnerCode) || !entities.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotaLedgerRepository(ctrl)
		l := NewQuotaLedger(repo, testSettings())

		repo.EXPECT().FindPartner(gomock.Any(), "KOL-X").Return(entities.PartnerQuota{}, nil)

		_, err := l.Lookup(context.Background(), " KOL-X ")
		if !errors.Is(err, ErrPartnerNotFound) {
			t.Fatalf("expected ErrPartnerNotFound, got %v", err)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotaLedgerRepository(ctrl)
		l := NewQuotaLedger(repo, testSettings())

		repo.EXPECT().FindPartner(gomock.Any(), "KOL-A").Return(entities.PartnerQuota{}, errors.New("throttled"))

		_, err := l.Lookup(context.Background(), "KOL-A")
		if !entities.IsDependency(err) {
			t.Fatalf("expected dependency error, got %v", err)
		}
	})
}

func TestQuotaLedger_ConsumedHours(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuotaLedgerRepository(ctrl)
	l := NewQuotaLedger(repo, testSettings())

	repo.EXPECT().ListUsage(gomock.Any(), "kol-a", "2025-03").Return([]entities.UsageRecord{
		{Code: "KOL-A", YearMonth: "2025-03", HoursConsumed: 2},
		{Code: "kol-a", YearMonth: "2025-03", HoursConsumed: 1.5},
		{Code: "KOL-B", YearMonth: "2025-03", HoursConsumed: 9},
		{Code: "KOL-A", YearMonth: "2025-04", HoursConsumed: 9},
	}, nil)

	got, err := l.ConsumedHours(context.Background(), "kol-a", "2025-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3.5 {
		t.Fatalf("expected 3.5, got %v", got)
	}
}

func TestQuotaLedger_RemainingHoursNeverNegative(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuotaLedgerRepository(ctrl)
	l := NewQuotaLedger(repo, testSettings())

	repo.EXPECT().ListUsage(gomock.Any(), "KOL-A", "2025-03").Return([]entities.UsageRecord{
		{Code: "KOL-A", YearMonth: "2025-03", HoursConsumed: 12},
	}, nil)

	got, err := l.RemainingHours(context.Background(), entities.PartnerQuota{Code: "KOL-A", HoursPerMonth: 10}, "2025-03")
	if err != nil || got != 0 {
		t.Fatalf("expected 0, got %v %v", got, err)
	}
}

func TestQuotaLedger_Record(t *testing.T) {
	t.Run("rejects empty hours", func(t *testing.T) {
		l := NewQuotaLedger(nil, testSettings())
		_, err := l.Record(context.Background(), entities.UsageRecord{Code: "KOL-A", YearMonth: "2025-03"})
		if !errors.Is(err, ErrInvalidUsageRecord) {
			t.Fatalf("expected ErrInvalidUsageRecord, got %v", err)
		}
	})

	t.Run("appends", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotaLedgerRepository(ctrl)
		l := NewQuotaLedger(repo, testSettings())

		repo.EXPECT().AppendUsage(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec entities.UsageRecord) (entities.UsageRecord, error) {
			if rec.CreatedAt.IsZero() {
				t.Fatalf("expected created_at to be set")
			}
			rec.ID = "u1"
			return rec, nil
		})

		got, err := l.Record(context.Background(), entities.UsageRecord{Code: "KOL-A", YearMonth: "2025-03", HoursConsumed: 2, ReservationReference: "ev1"})
		if err != nil || got.ID != "u1" {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})
}

func TestQuotaLedger_Reverse(t *testing.T) {
	t.Run("nothing to reverse", func(t *testing.T) {
		l := NewQuotaLedger(nil, testSettings())
		_, err := l.Reverse(context.Background(), "", " ")
		if !errors.Is(err, ErrMissingReservations) {
			t.Fatalf("expected ErrMissingReservations, got %v", err)
		}
	})

	t.Run("deduplicates references", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotaLedgerRepository(ctrl)
		l := NewQuotaLedger(repo, testSettings())

		repo.EXPECT().DeleteUsageByReferences(gomock.Any(), []string{"ev1", "ev2"}).Return(2, nil)

		n, err := l.Reverse(context.Background(), "ev1", "ev2", "ev1")
		if err != nil || n != 2 {
			t.Fatalf("expected 2, got %d %v", n, err)
		}
	})
}

func TestQuotaLedger_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuotaLedgerRepository(ctrl)
	settings := testSettings()
	settings.Location = time.FixedZone("UTC+8", 8*3600)
	l := NewQuotaLedger(repo, settings)

	repo.EXPECT().FindPartner(gomock.Any(), "KOL-A").Return(entities.PartnerQuota{Code: "KOL-A", HoursPerMonth: 10}, nil)
	repo.EXPECT().ListUsage(gomock.Any(), "KOL-A", gomock.Any()).DoAndReturn(func(_ context.Context, code, ym string) ([]entities.UsageRecord, error) {
		if ym == "2025-02" {
			return []entities.UsageRecord{{Code: code, YearMonth: ym, HoursConsumed: 4}}, nil
		}
		return nil, nil
	}).Times(4)

	// Already February in UTC+8.
	now := time.Date(2025, 1, 31, 20, 0, 0, 0, time.UTC)
	ov, err := l.Overview(context.Background(), "KOL-A", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2025-02", "2025-03", "2025-04", "2025-05"}
	if len(ov.Months) != len(want) {
		t.Fatalf("expected %d months, got %+v", len(want), ov.Months)
	}
	for i, m := range ov.Months {
		if m.YearMonth != want[i] {
			t.Fatalf("month %d: expected %s, got %s", i, want[i], m.YearMonth)
		}
	}
	if ov.Months[0].RemainingHours != 6 || ov.Months[1].RemainingHours != 10 {
		t.Fatalf("unexpected remaining: %+v", ov.Months)
	}
}

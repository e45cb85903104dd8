package config

import (
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("BASE_URL", "https://studio.example.com/")
	t.Setenv("ECPAY_MERCHANT_ID", "3002607")
	t.Setenv("ECPAY_HASH_KEY", "key")
	t.Setenv("ECPAY_HASH_IV", "iv")
	t.Setenv("CALENDAR_ID_BIG", "big@group.calendar.google.com")
	t.Setenv("CALENDAR_ID_SMALL", "small@group.calendar.google.com")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)

		c, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.HourlyRate != 500 || !c.IncludeTax || c.MonthsAhead != 3 {
			t.Fatalf("unexpected pricing defaults: %+v", c)
		}
		if c.CollaboratorTimeout != 10*time.Second {
			t.Fatalf("expected 10s timeout, got %v", c.CollaboratorTimeout)
		}
		if c.BaseURL != "https://studio.example.com" {
			t.Fatalf("expected trailing slash trimmed, got %s", c.BaseURL)
		}
		if c.Location().String() != "Asia/Taipei" {
			t.Fatalf("expected Asia/Taipei, got %s", c.Location())
		}
		if !strings.Contains(c.GatewayActionURL(), "payment-stage") {
			t.Fatalf("expected sandbox action url, got %s", c.GatewayActionURL())
		}
	})

	t.Run("production gateway", func(t *testing.T) {
		setRequired(t)
		t.Setenv("ECPAY_SANDBOX", "false")

		c, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(c.GatewayActionURL(), "stage") {
			t.Fatalf("expected production action url, got %s", c.GatewayActionURL())
		}
	})

	t.Run("missing base url", func(t *testing.T) {
		setRequired(t)
		t.Setenv("BASE_URL", "")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("bad timezone", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TIMEZONE", "Mars/Olympus")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		setRequired(t)
		t.Setenv("LEDGER_BACKEND", "postgres")

		_, err := Load()
		if err == nil || !strings.Contains(err.Error(), "LEDGER_BACKEND") {
			t.Fatalf("expected backend error, got %v", err)
		}
	})

	t.Run("sheets requires spreadsheet", func(t *testing.T) {
		setRequired(t)
		t.Setenv("LEDGER_BACKEND", "sheets")

		_, err := Load()
		if err == nil || !strings.Contains(err.Error(), "SHEETS_SPREADSHEET_ID") {
			t.Fatalf("expected spreadsheet error, got %v", err)
		}
	})

	t.Run("memory partners", func(t *testing.T) {
		setRequired(t)
		t.Setenv("MEMORY_PARTNERS", "KOL-A:10:Channel A, kol-b:2.5")

		c, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p := c.Partners()
		if len(p) != 2 {
			t.Fatalf("expected 2 partners, got %+v", p)
		}
		if p[0].Code != "KOL-A" || p[0].HoursPerMonth != 10 || p[0].DisplayName != "Channel A" {
			t.Fatalf("unexpected first partner: %+v", p[0])
		}
		if p[1].Code != "kol-b" || p[1].HoursPerMonth != 2.5 || p[1].DisplayName != "" {
			t.Fatalf("unexpected second partner: %+v", p[1])
		}
	})

	t.Run("malformed memory partner", func(t *testing.T) {
		setRequired(t)
		t.Setenv("MEMORY_PARTNERS", "KOL-A:lots")

		_, err := Load()
		if err == nil || !strings.Contains(err.Error(), "MEMORY_PARTNERS") {
			t.Fatalf("expected partner seed error, got %v", err)
		}
	})

	t.Run("missing gateway credentials", func(t *testing.T) {
		setRequired(t)
		t.Setenv("ECPAY_HASH_IV", "")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})
}

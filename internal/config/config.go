package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"studio_booking/internal/domain/entities"

	"github.com/kelseyhightower/envconfig"
)

const (
	BackendDynamoDB = "dynamodb"
	BackendSheets   = "sheets"
	BackendMemory   = "memory"
	BackendGoogle   = "google"
)

// Config is the single source of runtime settings. It is loaded once at
// startup and passed down explicitly.
type Config struct {
	// HTTP
	HTTPAddr    string   `envconfig:"HTTP_ADDR" default:":8080"`
	GinMode     string   `envconfig:"GIN_MODE" default:"release"`
	CORSOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	// Public base URL of the site, used for gateway callbacks and redirects.
	BaseURL string `envconfig:"BASE_URL" required:"true"`

	// Calendar math
	Timezone    string `envconfig:"TIMEZONE" default:"Asia/Taipei"`
	MonthsAhead int    `envconfig:"QUOTA_MONTHS_AHEAD" default:"3"`

	// Gateway
	MerchantID string `envconfig:"ECPAY_MERCHANT_ID"`
	HashKey    string `envconfig:"ECPAY_HASH_KEY"`
	HashIV     string `envconfig:"ECPAY_HASH_IV"`
	Sandbox    bool   `envconfig:"ECPAY_SANDBOX" default:"true"`
	TradeDesc  string `envconfig:"ECPAY_TRADE_DESC" default:"Studio booking"`

	// Pricing
	HourlyRate int64 `envconfig:"HOURLY_RATE" default:"500"`
	IncludeTax bool  `envconfig:"INCLUDE_TAX" default:"true"`

	CronSecret string `envconfig:"CRON_SECRET"`

	// Storage
	LedgerBackend   string `envconfig:"LEDGER_BACKEND" default:"dynamodb"`
	OrderBackend    string `envconfig:"ORDER_BACKEND" default:"dynamodb"`
	CalendarBackend string `envconfig:"CALENDAR_BACKEND" default:"google"`

	AWSRegion        string `envconfig:"AWS_REGION" default:"us-east-1"`
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT"`
	PartnersTable    string `envconfig:"PARTNERS_TABLE" default:"partners"`
	UsageTable       string `envconfig:"USAGE_TABLE" default:"partner_usage"`
	OrdersTable      string `envconfig:"ORDERS_TABLE" default:"payment_orders"`

	// Partners loaded into the memory ledger, as CODE:HOURS[:Display name].
	SeedPartners []string `envconfig:"MEMORY_PARTNERS"`

	GoogleCredentialsJSON string `envconfig:"GOOGLE_CREDENTIALS_JSON"`
	GoogleCredentialsFile string `envconfig:"GOOGLE_APPLICATION_CREDENTIALS"`
	SpreadsheetID         string `envconfig:"SHEETS_SPREADSHEET_ID"`
	PartnersTab           string `envconfig:"SHEETS_PARTNERS_TAB" default:"partners"`
	UsageTab              string `envconfig:"SHEETS_USAGE_TAB" default:"usage"`
	CalendarIDBig         string `envconfig:"CALENDAR_ID_BIG"`
	CalendarIDSmall       string `envconfig:"CALENDAR_ID_SMALL"`

	// Notifications. Empty AMQP URL falls back to log-only delivery.
	AMQPURL      string `envconfig:"AMQP_URL"`
	AMQPExchange string `envconfig:"AMQP_EXCHANGE" default:"studio.booking"`
	AdminContact string `envconfig:"ADMIN_CONTACT"`

	CollaboratorTimeout time.Duration `envconfig:"COLLABORATOR_TIMEOUT" default:"10s"`
	ShutdownTimeout     time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`

	location *time.Location
	partners []entities.PartnerQuota
}

func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate fails on any setting that would make the service misbehave at
// runtime instead of at startup.
func (c *Config) Validate() error {
	var errs []error

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE: %w", err))
	} else {
		c.location = loc
	}
	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, errors.New("BASE_URL must be an absolute URL"))
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.MonthsAhead < 0 {
		errs = append(errs, errors.New("QUOTA_MONTHS_AHEAD must not be negative"))
	}
	if c.HourlyRate <= 0 {
		errs = append(errs, errors.New("HOURLY_RATE must be positive"))
	}
	if c.CollaboratorTimeout <= 0 {
		errs = append(errs, errors.New("COLLABORATOR_TIMEOUT must be positive"))
	}
	if c.MerchantID == "" || c.HashKey == "" || c.HashIV == "" {
		errs = append(errs, errors.New("ECPAY_MERCHANT_ID, ECPAY_HASH_KEY and ECPAY_HASH_IV are required"))
	}

	switch c.LedgerBackend {
	case BackendDynamoDB, BackendMemory:
	case BackendSheets:
		if c.SpreadsheetID == "" {
			errs = append(errs, errors.New("SHEETS_SPREADSHEET_ID is required for the sheets ledger"))
		}
	default:
		errs = append(errs, fmt.Errorf("LEDGER_BACKEND %q is not supported", c.LedgerBackend))
	}
	partners, err := parseSeedPartners(c.SeedPartners)
	if err != nil {
		errs = append(errs, fmt.Errorf("MEMORY_PARTNERS: %w", err))
	} else {
		c.partners = partners
	}

	switch c.OrderBackend {
	case BackendDynamoDB, BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("ORDER_BACKEND %q is not supported", c.OrderBackend))
	}
	switch c.CalendarBackend {
	case BackendMemory:
	case BackendGoogle:
		if c.CalendarIDBig == "" || c.CalendarIDSmall == "" {
			errs = append(errs, errors.New("CALENDAR_ID_BIG and CALENDAR_ID_SMALL are required for the google calendar"))
		}
	default:
		errs = append(errs, fmt.Errorf("CALENDAR_BACKEND %q is not supported", c.CalendarBackend))
	}

	return errors.Join(errs...)
}

// Location is the timezone used for calendar-day and month boundaries.
func (c Config) Location() *time.Location {
	if c.location != nil {
		return c.location
	}
	return time.UTC
}

// Partners are the seed entries for the memory ledger.
func (c Config) Partners() []entities.PartnerQuota {
	return c.partners
}

func parseSeedPartners(entries []string) ([]entities.PartnerQuota, error) {
	var out []entities.PartnerQuota
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		parts := strings.SplitN(e, ":", 3)
		if len(parts) < 2 || strings.TrimSpace(parts[0]) == "" {
			return nil, fmt.Errorf("entry %q must be CODE:HOURS[:Display name]", e)
		}
		hours, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || hours < 0 {
			return nil, fmt.Errorf("entry %q has invalid hours", e)
		}
		p := entities.PartnerQuota{Code: strings.TrimSpace(parts[0]), HoursPerMonth: hours}
		if len(parts) == 3 {
			p.DisplayName = strings.TrimSpace(parts[2])
		}
		out = append(out, p)
	}
	return out, nil
}

func (c Config) CalendarIDs() map[entities.Studio]string {
	return map[entities.Studio]string{
		entities.StudioBig:   c.CalendarIDBig,
		entities.StudioSmall: c.CalendarIDSmall,
	}
}

func (c Config) GatewayActionURL() string {
	if c.Sandbox {
		return "https://payment-stage.ecpay.com.tw/Cashier/AioCheckOut/V5"
	}
	return "https://payment.ecpay.com.tw/Cashier/AioCheckOut/V5"
}

func (c Config) UsesDynamoDB() bool {
	return c.LedgerBackend == BackendDynamoDB || c.OrderBackend == BackendDynamoDB
}

func (c Config) UsesGoogle() bool {
	return c.LedgerBackend == BackendSheets || c.CalendarBackend == BackendGoogle
}

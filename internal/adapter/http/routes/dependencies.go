package routes

import (
	"context"
	"fmt"
	"log"

	"studio_booking/internal/adapter/persistence/repository"
	"studio_booking/internal/config"
	"studio_booking/internal/infrastructure/calendar"
	"studio_booking/internal/infrastructure/database"
	"studio_booking/internal/infrastructure/google"
	"studio_booking/internal/infrastructure/notification"
	"studio_booking/internal/infrastructure/payments"
	"studio_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/sheets/v4"
)

// dependencies are the collaborators selected by configuration.
type dependencies struct {
	calendar interfaces.ICalendar
	ledger   interfaces.IQuotaLedgerRepository
	orders   interfaces.IPaymentOrderRepository
	gateway  interfaces.IPaymentGateway
	signer   interfaces.IChecksumSigner
	notifier interfaces.INotifier
	closers  []func() error
}

func (d *dependencies) Close() {
	for _, c := range d.closers {
		if err := c(); err != nil {
			log.Printf("[routes] close dependency failed err=%v", err)
		}
	}
}

func buildDependencies(ctx context.Context, cfg config.Config) (*dependencies, error) {
	d := &dependencies{}

	signer, err := payments.NewECPaySigner(cfg.HashKey, cfg.HashIV)
	if err != nil {
		return nil, err
	}
	gateway, err := payments.NewECPayGateway(cfg.MerchantID, cfg.GatewayActionURL(), cfg.TradeDesc, cfg.Location(), signer)
	if err != nil {
		return nil, err
	}
	d.signer, d.gateway = signer, gateway

	var ddb *dynamodb.Client
	if cfg.UsesDynamoDB() {
		if ddb, err = database.ConnectDynamoDB(ctx, cfg); err != nil {
			return nil, fmt.Errorf("dynamodb: %w", err)
		}
	}

	var calSvc *gcal.Service
	var sheetsSvc *sheets.Service
	if cfg.CalendarBackend == config.BackendGoogle {
		if calSvc, err = google.NewCalendarService(ctx, cfg); err != nil {
			return nil, fmt.Errorf("google calendar: %w", err)
		}
	}
	if cfg.LedgerBackend == config.BackendSheets {
		if sheetsSvc, err = google.NewSheetsService(ctx, cfg); err != nil {
			return nil, fmt.Errorf("google sheets: %w", err)
		}
	}

	switch cfg.CalendarBackend {
	case config.BackendGoogle:
		d.calendar = calendar.NewGoogleCalendar(calSvc, cfg.CalendarIDs(), cfg.Location())
	default:
		log.Printf("[routes] using in-memory calendar")
		d.calendar = calendar.NewMemoryCalendar()
	}

	switch cfg.LedgerBackend {
	case config.BackendDynamoDB:
		d.ledger = repository.NewQuotaLedgerDynamoRepository(ddb, cfg.PartnersTable, cfg.UsageTable)
	case config.BackendSheets:
		d.ledger = repository.NewQuotaLedgerSheetsRepository(sheetsSvc, cfg.SpreadsheetID, cfg.PartnersTab, cfg.UsageTab)
	default:
		log.Printf("[routes] using in-memory quota ledger partners=%d", len(cfg.Partners()))
		d.ledger = repository.NewQuotaLedgerMemoryRepository(cfg.Partners()...)
	}

	switch cfg.OrderBackend {
	case config.BackendDynamoDB:
		d.orders = repository.NewPaymentOrderDynamoRepository(ddb, cfg.OrdersTable)
	default:
		log.Printf("[routes] using in-memory payment orders")
		d.orders = repository.NewPaymentOrderMemoryRepository()
	}

	if cfg.AMQPURL == "" {
		d.notifier = notification.LogNotifier{}
	} else {
		n, err := notification.NewAMQPNotifier(cfg.AMQPURL, cfg.AMQPExchange, cfg.AdminContact)
		if err != nil {
			return nil, fmt.Errorf("amqp: %w", err)
		}
		d.notifier = n
		d.closers = append(d.closers, n.Close)
	}

	log.Printf("[routes] backends calendar=%s ledger=%s orders=%s sandbox=%t", cfg.CalendarBackend, cfg.LedgerBackend, cfg.OrderBackend, cfg.Sandbox)
	return d, nil
}

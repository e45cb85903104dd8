package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	_ "studio_booking/docs"
	"studio_booking/internal/adapter/http/handlers"
	"studio_booking/internal/adapter/http/middleware"
	"studio_booking/internal/config"
	"studio_booking/internal/infrastructure/metrics"
	"studio_booking/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathBookings = "/bookings"
	PathCalendar = "/calendar"
	PathPartners = "/partners"
	PathPayments = "/payments"
	PathCron     = "/cron"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Booking *handlers.BookingHandler
	Partner *handlers.PartnerHandler
	Payment *handlers.PaymentHandler
	Cron    *handlers.CronHandler
}

// Run will start the server and block until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config) error {
	gin.SetMode(cfg.GinMode)

	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewRouter(cfg, newHandlers(cfg, deps)),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[routes] listening addr=%s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Printf("[routes] shutdown requested")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Printf("[routes] stopped")
	return nil
}

func newHandlers(cfg config.Config, d *dependencies) Handlers {
	settings := usecase.SettingsFromConfig(cfg)
	ledger := usecase.NewQuotaLedger(d.ledger, settings)

	booking := usecase.NewBookingUseCase(d.calendar, ledger, d.orders, d.gateway, d.notifier, settings)
	settlement := usecase.NewSettlementUseCase(d.orders, d.signer, d.calendar, ledger, d.notifier, settings)
	reconciliation := usecase.NewReconciliationUseCase(d.calendar, ledger, settings)

	return Handlers{
		Booking: handlers.NewBookingHandler(booking, cfg.Location()),
		Partner: handlers.NewPartnerHandler(ledger),
		Payment: handlers.NewPaymentHandler(settlement),
		Cron:    handlers.NewCronHandler(reconciliation),
	}
}

// NewRouter mounts every route on a fresh engine.
func NewRouter(cfg config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBookingRoutes(v1, h.Booking, h.Partner)
	addPaymentRoutes(v1, h.Payment)
	addCronRoutes(v1, h.Cron, cfg.CronSecret)
	return router
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[HTTP] request_id=%s recovered from panic: %v", middleware.GetRequestID(c), recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.CORS(cfg.CORSOrigins))
}

package usecase

import (
	"context"
	"log"
	"net/url"
	"strings"
	"time"

	"studio_booking/internal/domain/entities"
	"studio_booking/internal/infrastructure/metrics"
	"studio_booking/internal/usecase/interfaces"
)

// Gateway notification fields.
const (
	FieldMerchantTradeNo = "MerchantTradeNo"
	FieldRtnCode         = "RtnCode"
	FieldSimulatePaid    = "SimulatePaid"
	FieldCheckMacValue   = "CheckMacValue"

	rtnCodePaid = "1"
)

type SettlementResult string

const (
	SettlementCommitted        SettlementResult = "committed"
	SettlementAlreadyCompleted SettlementResult = "already_completed"
	SettlementPaymentFailed    SettlementResult = "payment_failed"
	SettlementSimulatedIgnored SettlementResult = "simulated_ignored"
	SettlementUnknownOrder     SettlementResult = "unknown_order"
	SettlementFailed           SettlementResult = "failed"
	SettlementRejected         SettlementResult = "rejected"
)

type ResultStatus string

const (
	ResultSuccess ResultStatus = "success"
	ResultFail    ResultStatus = "fail"
	ResultError   ResultStatus = "error"
)

// ISettlementUseCase handles the gateway's server-to-server notification
// and the browser redirect that follows checkout.
type ISettlementUseCase interface {
	HandleNotification(ctx context.Context, params map[string]string) (SettlementResult, error)
	ResultRedirect(params map[string]string) (string, ResultStatus)
}

type SettlementUseCase struct {
	orders    interfaces.IPaymentOrderRepository
	signer    interfaces.IChecksumSigner
	committer *committer
	settings  Settings
	now       func() time.Time
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(
	orders interfaces.IPaymentOrderRepository,
	signer interfaces.IChecksumSigner,
	calendar interfaces.ICalendar,
	ledger *QuotaLedger,
	notifier interfaces.INotifier,
	settings Settings,
) *SettlementUseCase {
	return &SettlementUseCase{
		orders:    orders,
		signer:    signer,
		committer: &committer{calendar: calendar, ledger: ledger, notifier: notifier, settings: settings},
		settings:  settings,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// HandleNotification returns an error only when the message fails checksum
// verification. Every later problem is logged and reported through the
// result so the caller still acknowledges the notification.
func (u *SettlementUseCase) HandleNotification(ctx context.Context, params map[string]string) (SettlementResult, error) {
	res, err := u.handle(ctx, params)
	metrics.Settlement(string(res))
	return res, err
}

func (u *SettlementUseCase) handle(ctx context.Context, params map[string]string) (SettlementResult, error) {
	orderID := strings.TrimSpace(params[FieldMerchantTradeNo])
	if !u.signer.Verify(params) {
		log.Printf("[settlement][usecase] checksum mismatch order_id=%s", orderID)
		return SettlementRejected, entities.IntegrityError{Msg: "CheckMacValue Error"}
	}
	log.Printf("[settlement][usecase] notification start order_id=%s rtn_code=%s simulate_paid=%s", orderID, params[FieldRtnCode], params[FieldSimulatePaid])

	if params[FieldRtnCode] != rtnCodePaid {
		log.Printf("[settlement][usecase] payment not successful order_id=%s rtn_code=%s", orderID, params[FieldRtnCode])
		return SettlementPaymentFailed, nil
	}
	if params[FieldSimulatePaid] == "1" && !u.settings.Sandbox {
		log.Printf("[settlement][usecase] simulated payment ignored outside sandbox order_id=%s", orderID)
		return SettlementSimulatedIgnored, nil
	}

	var order entities.PaymentOrder
	err := call(ctx, u.settings, collaboratorOrders, "get", func(ctx context.Context) error {
		var err error
		order, err = u.orders.GetByID(ctx, orderID)
		return err
	})
	if err != nil {
		log.Printf("[settlement][usecase] order lookup failed order_id=%s err=%v", orderID, err)
		return SettlementFailed, nil
	}
	if order.OrderID == "" {
		log.Printf("[settlement][usecase] unknown order order_id=%s", orderID)
		return SettlementUnknownOrder, nil
	}
	if order.IsCompleted() {
		log.Printf("[settlement][usecase] order already completed order_id=%s", orderID)
		return SettlementAlreadyCompleted, nil
	}

	in := commitInputFromOrder(order)
	res, err := u.committer.commit(ctx, in)
	if err != nil {
		log.Printf("[settlement][usecase] commit failed order_id=%s amount=%d needs_manual_settlement=true err=%v", orderID, order.Amount, err)
		return SettlementFailed, nil
	}

	var moved bool
	err = call(ctx, u.settings, collaboratorOrders, "mark_completed", func(ctx context.Context) error {
		var err error
		moved, err = u.orders.MarkCompleted(ctx, orderID, u.now())
		return err
	})
	if err != nil {
		log.Printf("[settlement][usecase] mark completed failed order_id=%s ref=%s needs_manual_settlement=true err=%v", orderID, res.ExternalReference, err)
		return SettlementFailed, nil
	}
	if !moved {
		log.Printf("[settlement][usecase] order completed concurrently order_id=%s ref=%s", orderID, res.ExternalReference)
		return SettlementAlreadyCompleted, nil
	}

	u.committer.notify(ctx, in, res)
	log.Printf("[settlement][usecase] settled order_id=%s ref=%s amount=%d", orderID, res.ExternalReference, order.Amount)
	return SettlementCommitted, nil
}

// ResultRedirect maps the browser-facing result post to the site's result
// page. A message that fails verification is reported as an error rather
// than trusted.
func (u *SettlementUseCase) ResultRedirect(params map[string]string) (string, ResultStatus) {
	orderID := strings.TrimSpace(params[FieldMerchantTradeNo])

	status := ResultError
	switch {
	case !u.signer.Verify(params):
		log.Printf("[settlement][usecase] result checksum mismatch order_id=%s", orderID)
	case params[FieldRtnCode] == rtnCodePaid:
		status = ResultSuccess
	default:
		status = ResultFail
	}

	q := url.Values{}
	q.Set("orderId", orderID)
	q.Set("status", string(status))
	return u.settings.BaseURL + "/pay/result?" + q.Encode(), status
}

package payments

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"studio_booking/internal/domain/entities"
	"studio_booking/internal/usecase/interfaces"
)

const tradeDateLayout = "2006/01/02 15:04:05"

var ErrMissingMerchantID = errors.New("missing gateway merchant id")

// ECPayGateway builds signed all-in-one checkout forms.
type ECPayGateway struct {
	merchantID string
	actionURL  string
	tradeDesc  string
	location   *time.Location
	signer     interfaces.IChecksumSigner
}

var _ interfaces.IPaymentGateway = (*ECPayGateway)(nil)

func NewECPayGateway(merchantID, actionURL, tradeDesc string, location *time.Location, signer interfaces.IChecksumSigner) (*ECPayGateway, error) {
	if merchantID == "" {
		return nil, ErrMissingMerchantID
	}
	if location == nil {
		location = time.UTC
	}
	log.Printf("[payment][gateway] checkout gateway initialized merchant_id=%s action_url=%s", merchantID, actionURL)
	return &ECPayGateway{
		merchantID: merchantID,
		actionURL:  actionURL,
		tradeDesc:  tradeDesc,
		location:   location,
		signer:     signer,
	}, nil
}

func (g *ECPayGateway) BuildCheckout(_ context.Context, req entities.CheckoutRequest) (entities.CheckoutForm, error) {
	if req.OrderID == "" || len(req.OrderID) > entities.MaxOrderIDLength {
		return entities.CheckoutForm{}, entities.ErrOrderIDTooLong
	}
	if req.Amount < 1 {
		return entities.CheckoutForm{}, entities.ErrNonPositiveAmount
	}
	tradeDate := req.TradeDate
	if tradeDate.IsZero() {
		tradeDate = time.Now()
	}

	fields := map[string]string{
		"MerchantID":        g.merchantID,
		"MerchantTradeNo":   req.OrderID,
		"MerchantTradeDate": tradeDate.In(g.location).Format(tradeDateLayout),
		"PaymentType":       "aio",
		"TotalAmount":       strconv.FormatInt(req.Amount, 10),
		"TradeDesc":         g.tradeDesc,
		"ItemName":          req.ItemName,
		"ReturnURL":         req.ReturnURL,
		"ChoosePayment":     "ALL",
		"EncryptType":       "1",
	}
	if req.OrderResultURL != "" {
		fields["OrderResultURL"] = req.OrderResultURL
	}
	if req.ClientBackURL != "" {
		fields["ClientBackURL"] = req.ClientBackURL
	}
	fields[checkMacValueField] = g.signer.Sign(fields)

	return entities.CheckoutForm{ActionURL: g.actionURL, Fields: fields}, nil
}

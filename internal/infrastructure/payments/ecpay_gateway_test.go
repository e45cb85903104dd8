package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"studio_booking/internal/domain/entities"
)

func TestECPayGateway_BuildCheckout(t *testing.T) {
	signer, _ := NewECPaySigner("pwFHCqoQZGmho4w6", "EkRm7iFT261dpevs")
	taipei := time.FixedZone("UTC+8", 8*3600)
	g, err := NewECPayGateway("3002607", "https://payment-stage.ecpay.com.tw/Cashier/AioCheckOut/V5", "Studio booking", taipei, signer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("signed form", func(t *testing.T) {
		form, err := g.BuildCheckout(context.Background(), entities.CheckoutRequest{
			OrderID:        "STB0123456789ABCDEFG",
			Amount:         1050,
			ItemName:       "Studio x 2h",
			TradeDate:      time.Date(2025, 3, 1, 2, 30, 0, 0, time.UTC),
			ReturnURL:      "https://studio.example.com/v1/payments/ecpay/notify",
			OrderResultURL: "https://studio.example.com/v1/payments/ecpay/result",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f := form.Fields
		if f["TotalAmount"] != "1050" || f["MerchantID"] != "3002607" || f["PaymentType"] != "aio" || f["ChoosePayment"] != "ALL" || f["EncryptType"] != "1" {
			t.Fatalf("unexpected fields: %+v", f)
		}
		if f["MerchantTradeDate"] != "2025/03/01 10:30:00" {
			t.Fatalf("expected trade date in gateway timezone, got %s", f["MerchantTradeDate"])
		}
		if _, ok := f["ClientBackURL"]; ok {
			t.Fatalf("expected empty client back url to be omitted")
		}
		if !signer.Verify(f) {
			t.Fatalf("expected form to carry a valid checksum")
		}
	})

	t.Run("order id too long", func(t *testing.T) {
		_, err := g.BuildCheckout(context.Background(), entities.CheckoutRequest{OrderID: "STB0123456789ABCDEFGH", Amount: 10})
		if !errors.Is(err, entities.ErrOrderIDTooLong) {
			t.Fatalf("expected ErrOrderIDTooLong, got %v", err)
		}
	})

	t.Run("non positive amount", func(t *testing.T) {
		_, err := g.BuildCheckout(context.Background(), entities.CheckoutRequest{OrderID: "STB1", Amount: 0})
		if !errors.Is(err, entities.ErrNonPositiveAmount) {
			t.Fatalf("expected ErrNonPositiveAmount, got %v", err)
		}
	})
}

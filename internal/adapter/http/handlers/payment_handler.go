package handlers

import (
	"log"
	"net/http"

	"studio_booking/internal/domain/entities"
	"studio_booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

// Plain-text bodies the gateway expects in reply to its notification.
const (
	ackOK            = "1|OK"
	ackChecksumError = "0|CheckMacValue Error"
)

// PaymentHandler receives the gateway's form posts.
type PaymentHandler struct {
	usecase usecase.ISettlementUseCase
}

func NewPaymentHandler(uc usecase.ISettlementUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Notify godoc
// @Summary      Gateway payment notification
// @Description  Server-to-server callback. Replies 1|OK once the message is authentic, whatever happens afterwards.
// @Tags         payments
// @Accept       x-www-form-urlencoded
// @Produce      plain
// @Success      200  {string}  string  "1|OK"
// @Failure      400  {string}  string  "0|CheckMacValue Error"
// @Router       /payments/ecpay/notify [post]
func (h *PaymentHandler) Notify(c *gin.Context) {
	params, err := formParams(c)
	if err != nil {
		log.Printf("[payment][handler] unreadable notification err=%v", err)
		c.String(http.StatusBadRequest, ackChecksumError)
		return
	}

	result, err := h.usecase.HandleNotification(c.Request.Context(), params)
	if entities.IsIntegrity(err) {
		c.String(http.StatusBadRequest, ackChecksumError)
		return
	}
	if err != nil {
		log.Printf("[payment][handler] notification error order_id=%s err=%v", params[usecase.FieldMerchantTradeNo], err)
	}
	log.Printf("[payment][handler] notification handled order_id=%s result=%s", params[usecase.FieldMerchantTradeNo], result)
	c.String(http.StatusOK, ackOK)
}

// Result godoc
// @Summary      Browser return after checkout
// @Tags         payments
// @Accept       x-www-form-urlencoded
// @Success      303
// @Router       /payments/ecpay/result [post]
func (h *PaymentHandler) Result(c *gin.Context) {
	params, err := formParams(c)
	if err != nil {
		params = map[string]string{}
	}
	target, status := h.usecase.ResultRedirect(params)
	log.Printf("[payment][handler] result redirect order_id=%s status=%s", params[usecase.FieldMerchantTradeNo], status)
	c.Redirect(http.StatusSeeOther, target)
}

// formParams flattens the posted form, keeping the first value of each key.
func formParams(c *gin.Context) (map[string]string, error) {
	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	params := make(map[string]string, len(c.Request.PostForm))
	for k, v := range c.Request.PostForm {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params, nil
}

package handlers

import (
	"log"
	"net/http"
	"time"

	response "studio_booking/internal/adapter/http/dto/response"
	"studio_booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PartnerHandler struct {
	ledger usecase.IQuotaLedger
	now    func() time.Time
}

func NewPartnerHandler(ledger usecase.IQuotaLedger) *PartnerHandler {
	return &PartnerHandler{ledger: ledger, now: time.Now}
}

// GetQuota godoc
// @Summary      Remaining free hours of a partner code
// @Tags         partners
// @Produce      json
// @Param        code  path      string  true  "Partner code"
// @Success      200   {object}  response.QuotaResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /partners/{code}/quota [get]
func (h *PartnerHandler) GetQuota(c *gin.Context) {
	code := c.Param("code")
	overview, err := h.ledger.Overview(c.Request.Context(), code, h.now())
	if err != nil {
		log.Printf("[partner][handler] quota failed code=%q err=%v", code, err)
		abortWithError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotaOverview(overview))
}

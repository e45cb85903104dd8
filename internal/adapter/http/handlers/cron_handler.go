package handlers

import (
	"log"
	"net/http"

	response "studio_booking/internal/adapter/http/dto/response"
	"studio_booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CronHandler exposes scheduled maintenance jobs. Routes using it must sit
// behind the bearer secret middleware.
type CronHandler struct {
	reconciliation usecase.IReconciliationUseCase
}

func NewCronHandler(uc usecase.IReconciliationUseCase) *CronHandler {
	return &CronHandler{reconciliation: uc}
}

// Reconcile godoc
// @Summary      Reverse ledger usage whose reservation was deleted
// @Tags         cron
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.SweepResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /cron/reconcile [get]
func (h *CronHandler) Reconcile(c *gin.Context) {
	result, err := h.reconciliation.Sweep(c.Request.Context())
	if err != nil {
		log.Printf("[reconcile][handler] sweep failed err=%v", err)
		abortWithError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSweepResult(result))
}

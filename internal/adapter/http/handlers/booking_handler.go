package handlers

import (
	"log"
	"net/http"
	"time"

	request "studio_booking/internal/adapter/http/dto/request"
	response "studio_booking/internal/adapter/http/dto/response"
	"studio_booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles booking requests and calendar availability.
type BookingHandler struct {
	usecase  usecase.IBookingUseCase
	location *time.Location
}

func NewBookingHandler(uc usecase.IBookingUseCase, location *time.Location) *BookingHandler {
	if location == nil {
		location = time.UTC
	}
	return &BookingHandler{usecase: uc, location: location}
}

// CreateBooking godoc
// @Summary      Request a studio booking
// @Description  Commits the reservation when the partner quota covers it, otherwise returns the checkout form to post.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        booking  body      request.BookingRequest  true  "Booking"
// @Success      201      {object}  response.BookingResponse
// @Success      200      {object}  response.BookingResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.BookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[booking][handler] invalid payload err=%v", err)
		abortWithError(c, errInvalidBookingPayload)
		return
	}

	req, err := payload.ToBookingRequest()
	if err != nil {
		abortWithError(c, mapError(err))
		return
	}
	log.Printf("[booking][handler] create start studio=%s start=%s end=%s partner=%q", req.Studio, req.Interval.Start.Format(time.RFC3339), req.Interval.End.Format(time.RFC3339), req.PartnerCode)

	outcome, err := h.usecase.Request(c.Request.Context(), req)
	if err != nil {
		log.Printf("[booking][handler] create failed studio=%s err=%v", req.Studio, err)
		abortWithError(c, mapError(err))
		return
	}

	status := http.StatusOK
	if outcome.Status == usecase.BookingCommitted {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromBookingOutcome(outcome))
}

// ListBusySlots godoc
// @Summary      List occupied intervals of a studio
// @Tags         calendar
// @Produce      json
// @Param        studio  query     string  false  "big or small"
// @Param        from    query     string  true   "first day, yyyy-mm-dd"
// @Param        to      query     string  true   "last day, yyyy-mm-dd"
// @Success      200     {object}  response.BusySlotsResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      502     {object}  pkg.HTTPError
// @Router       /calendar/events [get]
func (h *BookingHandler) ListBusySlots(c *gin.Context) {
	var query request.BusySlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithError(c, errInvalidQuery)
		return
	}
	studio, from, to, err := query.Window(h.location)
	if err != nil {
		abortWithError(c, mapError(err))
		return
	}

	slots, err := h.usecase.BusySlots(c.Request.Context(), studio, from, to)
	if err != nil {
		log.Printf("[booking][handler] list events failed studio=%s err=%v", studio, err)
		abortWithError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBusySlots(studio, from, to, slots))
}

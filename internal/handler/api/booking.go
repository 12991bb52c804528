package api

import (
	"context"
	"net/http"

	"physio-scheduler/internal/domain/actor"
	"physio-scheduler/internal/domain/booking"
	reqdto "physio-scheduler/internal/handler/dto/request"
	resdto "physio-scheduler/internal/handler/dto/response"
	"physio-scheduler/internal/handler/httperr"
	"physio-scheduler/internal/handler/middleware"
	"physio-scheduler/internal/infra/metrics"
	"physio-scheduler/internal/pkg/errs"
	"physio-scheduler/internal/usecase/commands"
	"physio-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Reserve a slot and open a payment checkout session
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	caller, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing actor"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date or time", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), caller, in)
	if err != nil {
		metrics.IncBookingCreated(resultLabel(err))
		httperr.AbortWithDomainError(c, err, "Create booking failed")
		return
	}
	metrics.IncBookingCreated("success")
	c.Header("Location", "/api/bookings/"+result.Reference.String())
	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary Get booking
// @Description Get a booking by reference (client, provider or admin)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Booking reference"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{reference} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	caller, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing actor"), "Unauthorized", nil)
		return
	}
	ref, err := booking.ParseReference(c.Param("reference"))
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Invalid reference")
		return
	}
	view, err := h.q.GetByReference(c.Request.Context(), caller, ref)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Confirm booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Booking reference"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{reference}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, "confirm", h.cmds.Confirm)
}

// @Summary Decline booking
// @Description Decline a booking; the slot becomes free again
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Booking reference"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{reference}/decline [post]
func (h *BookingHandler) Decline(c *gin.Context) {
	h.transition(c, "decline", h.cmds.Decline)
}

// @Summary Complete booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Booking reference"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{reference}/complete [post]
func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, "complete", h.cmds.Complete)
}

type transitionCmd func(ctx context.Context, caller actor.Actor, ref booking.Reference) (booking.StatusChange, error)

// transition runs cmd and answers with the refreshed booking view.
func (h *BookingHandler) transition(c *gin.Context, action string, cmd transitionCmd) {
	caller, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing actor"), "Unauthorized", nil)
		return
	}
	ref, err := booking.ParseReference(c.Param("reference"))
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Invalid reference")
		return
	}
	if _, err = cmd(c.Request.Context(), caller, ref); err != nil {
		metrics.IncBookingTransition(action, resultLabel(err))
		httperr.AbortWithDomainError(c, err, "Booking update failed")
		return
	}
	metrics.IncBookingTransition(action, "success")

	view, err := h.q.GetByReference(c.Request.Context(), caller, ref)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func resultLabel(err error) string {
	switch {
	case errs.Is(err, errs.ErrSlotConflict):
		return "conflict"
	case errs.Is(err, errs.ErrState):
		return "invalid_state"
	case errs.Is(err, errs.ErrValidation):
		return "invalid"
	case errs.Is(err, errs.ErrForbidden):
		return "forbidden"
	case errs.Is(err, errs.ErrNotFound):
		return "not_found"
	case errs.Is(err, errs.ErrExternalDependency):
		return "gateway_error"
	default:
		return "error"
	}
}

package api

import (
	"net/http"
	"strconv"

	"physio-scheduler/internal/domain/availability"
	resdto "physio-scheduler/internal/handler/dto/response"
	"physio-scheduler/internal/handler/httperr"
	"physio-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary List bookable slots
// @Description Slot start times a client can book for a provider on one date
// @Tags availability
// @Produce json
// @Param providerId path int true "Provider ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /providers/{providerId}/slots [get]
func (h *AvailabilityHandler) Slots(c *gin.Context) {
	providerID, err := providerIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider id", nil)
		return
	}
	date, err := availability.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}
	view, err := h.q.Slots(c.Request.Context(), providerID, date)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load slots")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotsView(view))
}

// @Summary List available dates
// @Description Dates in a month with at least one bookable slot
// @Tags availability
// @Produce json
// @Param providerId path int true "Provider ID"
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {object} resdto.AvailableDatesResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /providers/{providerId}/available-dates [get]
func (h *AvailabilityHandler) AvailableDates(c *gin.Context) {
	providerID, err := providerIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider id", nil)
		return
	}
	month, err := availability.ParseMonth(c.Query("month"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid month, expected YYYY-MM", nil)
		return
	}
	view, err := h.q.AvailableDates(c.Request.Context(), providerID, month)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load available dates")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailableDatesView(view))
}

func providerIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("providerId"), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}

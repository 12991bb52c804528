package api

import (
	"net/http"
	"strconv"

	"physio-scheduler/internal/domain/actor"
	"physio-scheduler/internal/domain/availability"
	reqdto "physio-scheduler/internal/handler/dto/request"
	resdto "physio-scheduler/internal/handler/dto/response"
	"physio-scheduler/internal/handler/httperr"
	"physio-scheduler/internal/handler/middleware"
	"physio-scheduler/internal/pkg/errs"
	"physio-scheduler/internal/usecase/commands"
	"physio-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errAdminNeedsProvider = errs.New("admin requests must name a providerId")

type ScheduleHandler struct {
	cmds commands.ScheduleCommands
	q    queries.ScheduleQueries
}

func NewScheduleHandler(cmds commands.ScheduleCommands, q queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{cmds: cmds, q: q}
}

// @Summary Get weekly template
// @Description Weekly availability rules of the calling provider (admins pass providerId)
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param providerId query int false "Provider ID (admin only)"
// @Success 200 {object} resdto.TemplateResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /providers/me/template [get]
func (h *ScheduleHandler) GetTemplate(c *gin.Context) {
	caller, providerID, ok := h.target(c)
	if !ok {
		return
	}
	if !caller.ActsForProvider(providerID) {
		httperr.AbortWithDomainError(c, errs.MarkAll(errs.Newf("provider %d", providerID), commands.ErrNotScheduleOwner, errs.ErrForbidden), "Forbidden")
		return
	}
	tpl, err := h.q.WeeklyTemplate(c.Request.Context(), providerID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load template")
		return
	}
	c.JSON(http.StatusOK, resdto.FromWeeklyTemplate(tpl))
}

// @Summary Replace weekly template
// @Description Replace all seven weekday rules atomically
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param providerId query int false "Provider ID (admin only)"
// @Param request body reqdto.ReplaceTemplateRequest true "Weekly rules"
// @Success 200 {object} resdto.TemplateResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /providers/me/template [put]
func (h *ScheduleHandler) PutTemplate(c *gin.Context) {
	caller, providerID, ok := h.target(c)
	if !ok {
		return
	}
	var req reqdto.ReplaceTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	rules, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Invalid rules")
		return
	}
	tpl, err := h.cmds.ReplaceWeeklyTemplate(c.Request.Context(), caller, providerID, rules)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Replace template failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromWeeklyTemplate(tpl))
}

// @Summary List overrides
// @Description Date overrides of the calling provider within a month
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param providerId query int false "Provider ID (admin only)"
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {array} resdto.OverrideResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /providers/me/overrides [get]
func (h *ScheduleHandler) ListOverrides(c *gin.Context) {
	caller, providerID, ok := h.target(c)
	if !ok {
		return
	}
	if !caller.ActsForProvider(providerID) {
		httperr.AbortWithDomainError(c, errs.MarkAll(errs.Newf("provider %d", providerID), commands.ErrNotScheduleOwner, errs.ErrForbidden), "Forbidden")
		return
	}
	month, err := availability.ParseMonth(c.Query("month"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid month, expected YYYY-MM", nil)
		return
	}
	items, err := h.q.Overrides(c.Request.Context(), providerID, month)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load overrides")
		return
	}
	c.JSON(http.StatusOK, gin.H{"overrides": resdto.FromOverrides(items)})
}

// @Summary Upsert override
// @Description Create or replace the override for one date
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param providerId query int false "Provider ID (admin only)"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param request body reqdto.UpsertOverrideRequest true "Override"
// @Success 200 {object} resdto.OverrideResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /providers/me/overrides/{date} [put]
func (h *ScheduleHandler) PutOverride(c *gin.Context) {
	caller, providerID, ok := h.target(c)
	if !ok {
		return
	}
	date, err := availability.ParseDate(c.Param("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}
	var req reqdto.UpsertOverrideRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	override, err := req.ToDomain(providerID, date)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Invalid override")
		return
	}
	saved, err := h.cmds.UpsertOverride(c.Request.Context(), caller, override)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Save override failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOverride(saved))
}

// @Summary Delete override
// @Tags schedule
// @Security BearerAuth
// @Param providerId query int false "Provider ID (admin only)"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /providers/me/overrides/{date} [delete]
func (h *ScheduleHandler) DeleteOverride(c *gin.Context) {
	caller, providerID, ok := h.target(c)
	if !ok {
		return
	}
	date, err := availability.ParseDate(c.Param("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}
	if err = h.cmds.RemoveOverride(c.Request.Context(), caller, providerID, date); err != nil {
		httperr.AbortWithDomainError(c, err, "Delete override failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// target resolves whose schedule the request addresses: a provider's own,
// or the providerId query parameter for admins.
func (h *ScheduleHandler) target(c *gin.Context) (actor.Actor, int64, bool) {
	caller, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing actor"), "Unauthorized", nil)
		return actor.Actor{}, 0, false
	}
	if !caller.IsAdmin() {
		return caller, caller.ID, true
	}
	raw := c.Query("providerId")
	if raw == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errAdminNeedsProvider, errAdminNeedsProvider.Error(), nil)
		return actor.Actor{}, 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errAdminNeedsProvider, "Invalid providerId", nil)
		return actor.Actor{}, 0, false
	}
	return caller, id, true
}

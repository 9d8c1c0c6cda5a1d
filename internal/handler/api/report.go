package api

import (
	"net/http"

	"canteen-backoffice/internal/domain/admin"
	reqdto "canteen-backoffice/internal/handler/dto/request"
	"canteen-backoffice/internal/handler/httperr"
	"canteen-backoffice/internal/handler/middleware"
	"canteen-backoffice/internal/pkg/civil"
	"canteen-backoffice/internal/pkg/errs"
	"canteen-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	queries  queries.ReportQueries
	calendar *civil.Calendar
}

func NewReportHandler(queries queries.ReportQueries, calendar *civil.Calendar) *ReportHandler {
	return &ReportHandler{
		queries:  queries,
		calendar: calendar,
	}
}

// @Summary Meal report
// @Description Meal counts per method grouped by day, meal type or fixed-size bucket
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param company_id query string false "Company ID"
// @Param place_id query string false "Place ID"
// @Param location_id query string false "Location ID"
// @Param from query string false "YYYY-MM-DD or RFC 3339"
// @Param to query string false "YYYY-MM-DD or RFC 3339"
// @Param group_by query string false "day, meal_type or bucket"
// @Param bucket_minutes query int false "Bucket size in minutes"
// @Success 200 {object} queries.MealReport
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reports/meals [get]
func (h *ReportHandler) Meals(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	report, err := h.queries.MealReport(c.Request.Context(), filter)
	if err != nil {
		abortReportError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Fee report
// @Description Fee record counts and amounts grouped by day or status
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param company_id query string false "Company ID"
// @Param place_id query string false "Place ID"
// @Param location_id query string false "Location ID"
// @Param from query string false "YYYY-MM-DD or RFC 3339"
// @Param to query string false "YYYY-MM-DD or RFC 3339"
// @Param group_by query string false "day or status"
// @Success 200 {object} queries.FeeReport
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reports/fees [get]
func (h *ReportHandler) Fees(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	report, err := h.queries.FeeReport(c.Request.Context(), filter)
	if err != nil {
		abortReportError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Dashboard summary
// @Description Today's meals per type, distinct collectors and pending fees
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param company_id query string false "Company ID"
// @Param place_id query string false "Place ID"
// @Param location_id query string false "Location ID"
// @Success 200 {object} queries.DashboardSummary
// @Failure 403 {object} httperr.Response
// @Router /dashboard/summary [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var q reqdto.ScopeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	summary, err := h.queries.DashboardSummary(c.Request.Context(), principal, q.ToScope())
	if err != nil {
		abortReportError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ReportHandler) bindFilter(c *gin.Context) (queries.ReportFilter, bool) {
	principal, ok := h.principal(c)
	if !ok {
		return queries.ReportFilter{}, false
	}
	var q reqdto.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return queries.ReportFilter{}, false
	}
	filter, err := q.ToFilter(h.calendar, principal)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return queries.ReportFilter{}, false
	}
	return filter, true
}

func (h *ReportHandler) principal(c *gin.Context) (admin.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingPrincipal, "Internal server error", nil)
	}
	return p, ok
}

func abortReportError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrScopeForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Requested scope is outside your company", nil)
	case errs.Is(err, queries.ErrInvalidRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
	case errs.Is(err, queries.ErrInvalidGrouping):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unsupported grouping for this report", nil)
	case errs.Is(err, queries.ErrInvalidBucket):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Bucket size must be whole minutes up to 24 hours", nil)
	case errs.Is(err, civil.ErrInvalidDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

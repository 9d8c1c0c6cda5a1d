package api

import (
	"net/http"

	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/domain/meal"
	reqdto "canteen-backoffice/internal/handler/dto/request"
	resdto "canteen-backoffice/internal/handler/dto/response"
	"canteen-backoffice/internal/handler/httperr"
	"canteen-backoffice/internal/handler/middleware"
	"canteen-backoffice/internal/pkg/civil"
	"canteen-backoffice/internal/pkg/config"
	"canteen-backoffice/internal/pkg/errs"
	"canteen-backoffice/internal/usecase/commands"
	"canteen-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type MemberHandler struct {
	assignments commands.AssignmentCommands
	queries     queries.MemberQueries
	calendar    *civil.Calendar
	cardCfg     config.CardConfig
}

func NewMemberHandler(assignments commands.AssignmentCommands, queries queries.MemberQueries, calendar *civil.Calendar, cfg config.Config) *MemberHandler {
	return &MemberHandler{
		assignments: assignments,
		queries:     queries,
		calendar:    calendar,
		cardCfg:     cfg.Card,
	}
}

// @Summary Assign a meal package
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Param request body reqdto.AssignPackageRequest true "Assignment"
// @Success 201 {object} resdto.AssignmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /members/{id}/assignments [post]
func (h *MemberHandler) AssignPackage(c *gin.Context) {
	principal, memberID, ok := h.memberRequest(c)
	if !ok {
		return
	}

	var req reqdto.AssignPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.assignments.AssignPackage(c.Request.Context(), req.ToInput(memberID, principal))
	if err != nil {
		abortMemberError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAssignPackageResult(result))
}

// @Summary Cancel or purge an assignment
// @Tags members
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Param assignmentId path string true "Assignment ID"
// @Param hard query bool false "Delete the row instead of cancelling"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /members/{id}/assignments/{assignmentId} [delete]
func (h *MemberHandler) RemoveAssignment(c *gin.Context) {
	principal, memberID, ok := h.memberRequest(c)
	if !ok {
		return
	}
	assignmentID, err := uuid.Parse(c.Param("assignmentId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid assignment ID format", nil)
		return
	}
	var q reqdto.RemoveAssignmentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	if err := h.assignments.RemoveAssignment(c.Request.Context(), memberID, assignmentID, q.Hard, principal); err != nil {
		abortMemberError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Member meal history
// @Description Ledger rows for one member, by default for the current civil day
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Param from query string false "YYYY-MM-DD or RFC 3339"
// @Param to query string false "YYYY-MM-DD or RFC 3339"
// @Param meal_type query string false "Meal type"
// @Success 200 {array} resdto.MealEntryResponse
// @Router /members/{id}/meals [get]
func (h *MemberHandler) MealEntries(c *gin.Context) {
	principal, memberID, ok := h.memberRequest(c)
	if !ok {
		return
	}
	var q reqdto.MealEntriesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	from, to, err := reqdto.ParseRange(h.calendar, q.From, q.To)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return
	}

	views, err := h.queries.MealEntries(c.Request.Context(), principal, memberID, queries.MealEntryFilter{
		From:     from,
		To:       to,
		MealType: q.MealType,
	})
	if err != nil {
		abortMemberError(c, err)
		return
	}
	res, err := resdto.FromMealEntries(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Member card QR code
// @Description PNG QR code carrying the member's card code
// @Tags members
// @Produce png
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {file} binary
// @Router /members/{id}/card.png [get]
func (h *MemberHandler) CardPNG(c *gin.Context) {
	principal, memberID, ok := h.memberRequest(c)
	if !ok {
		return
	}

	card, err := h.queries.Card(c.Request.Context(), principal, memberID)
	if err != nil {
		abortMemberError(c, err)
		return
	}

	png, err := qrcode.Encode(card.Code, qrcode.Medium, h.cardCfg.QRSize)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render card", nil)
		return
	}
	c.Header(middleware.HeaderCardCode, card.Code)
	c.Data(http.StatusOK, "image/png", png)
}

func (h *MemberHandler) memberRequest(c *gin.Context) (admin.Principal, uuid.UUID, bool) {
	p, found := middleware.GetPrincipal(c)
	if !found {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingPrincipal, "Internal server error", nil)
		return admin.Principal{}, uuid.Nil, false
	}
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid member ID format", nil)
		return admin.Principal{}, uuid.Nil, false
	}
	return p, memberID, true
}

func abortMemberError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrMemberNotFoundWrite), errs.Is(err, queries.ErrMemberNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Member not found", nil)
	case errs.Is(err, commands.ErrAssignmentForbidden), errs.Is(err, queries.ErrMemberForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Member belongs to another company", nil)
	case errs.Is(err, commands.ErrPackageNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Package not found", nil)
	case errs.Is(err, commands.ErrPlaceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Place not found", nil)
	case errs.Is(err, commands.ErrLocationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Location not found", nil)
	case errs.Is(err, commands.ErrAssignmentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Assignment not found", nil)
	case errs.Is(err, commands.ErrAssignmentOutOfScope):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Package, place or location belongs to another company", nil)
	case errs.Is(err, commands.ErrInvalidAssignmentSpec):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Assignment end must not be before its start", nil)
	case errs.Is(err, queries.ErrInvalidRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
	case errs.Is(err, meal.ErrInvalidMealType):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown meal type", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

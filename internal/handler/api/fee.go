package api

import (
	"net/http"

	"canteen-backoffice/internal/domain/fee"
	reqdto "canteen-backoffice/internal/handler/dto/request"
	resdto "canteen-backoffice/internal/handler/dto/response"
	"canteen-backoffice/internal/handler/httperr"
	"canteen-backoffice/internal/handler/middleware"
	"canteen-backoffice/internal/pkg/errs"
	"canteen-backoffice/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FeeHandler struct {
	commands commands.FeeCommands
}

func NewFeeHandler(commands commands.FeeCommands) *FeeHandler {
	return &FeeHandler{commands: commands}
}

// @Summary Create a pending fee record
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFeeRequest true "Fee"
// @Success 201 {object} resdto.FeeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fees [post]
func (h *FeeHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingPrincipal, "Internal server error", nil)
		return
	}

	var req reqdto.CreateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.commands.CreateFee(c.Request.Context(), req.ToInput(principal))
	if err != nil {
		abortFeeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromFeeResult(result))
}

// @Summary Mark a fee record paid
// @Description Re-syncs the member fee-paid flag in the same transaction
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Fee record ID"
// @Success 200 {object} resdto.FeeResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /fees/{id}/pay [post]
func (h *FeeHandler) Pay(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingPrincipal, "Internal server error", nil)
		return
	}
	feeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid fee ID format", nil)
		return
	}

	result, err := h.commands.PayFee(c.Request.Context(), feeID, principal)
	if err != nil {
		abortFeeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFeeResult(result))
}

func abortFeeError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrFeeRecordNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Fee record not found", nil)
	case errs.Is(err, fee.ErrAlreadyPaid):
		httperr.AbortWithError(c, http.StatusConflict, err, "Fee record already paid", nil)
	case errs.Is(err, commands.ErrInvalidFeeRecord):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid fee record", nil)
	default:
		abortMemberError(c, err)
	}
}

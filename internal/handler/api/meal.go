package api

import (
	"fmt"
	"net/http"

	"canteen-backoffice/internal/domain/meal"
	reqdto "canteen-backoffice/internal/handler/dto/request"
	resdto "canteen-backoffice/internal/handler/dto/response"
	"canteen-backoffice/internal/handler/httperr"
	"canteen-backoffice/internal/handler/middleware"
	"canteen-backoffice/internal/pkg/errs"
	"canteen-backoffice/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// Error kinds returned by POST /api/meals/record. Terminals switch on these.
const (
	KindNotFound              = "NotFound"
	KindInvalidArgument       = "InvalidArgument"
	KindNoActivePackage       = "NoActivePackage"
	KindCompanyNotLinked      = "CompanyNotLinked"
	KindMethodNotAllowed      = "MethodNotAllowed"
	KindFeesUnpaid            = "FeesUnpaid"
	KindFeesPending           = "FeesPending"
	KindNoMealsConfigured     = "NoMealsConfigured"
	KindNoMealScheduledToday  = "NoMealScheduledToday"
	KindNoMealAtThisTime      = "NoMealAtThisTime"
	KindAlreadyCollectedToday = "AlreadyCollectedToday"
	KindTimeout               = "Timeout"
	KindInternal              = httperr.InternalKind
)

type mealFailure struct {
	target  error
	kind    string
	status  int
	message string
}

// Order matters only for errors carrying more than one mark; the first match wins.
var mealFailures = []mealFailure{
	{meal.ErrInvalidArgument, KindInvalidArgument, http.StatusBadRequest, "The request is missing a valid user or collection method."},
	{meal.ErrMemberNotFound, KindNotFound, http.StatusNotFound, "No member matches this id or card."},
	{meal.ErrNoActivePackage, KindNoActivePackage, http.StatusUnprocessableEntity, "The member has no active meal package."},
	{meal.ErrCompanyNotLinked, KindCompanyNotLinked, http.StatusUnprocessableEntity, "The member's package is not linked to a company."},
	{meal.ErrMethodNotAllowed, KindMethodNotAllowed, http.StatusForbidden, "This collection method is not allowed for the member's company."},
	{meal.ErrFeesUnpaid, KindFeesUnpaid, http.StatusPaymentRequired, "The member's fees are marked unpaid."},
	{meal.ErrFeesPending, KindFeesPending, http.StatusPaymentRequired, "The member has pending fee records."},
	{meal.ErrNoMealsConfigured, KindNoMealsConfigured, http.StatusUnprocessableEntity, "The member's package has no meal windows configured."},
	{meal.ErrNoMealScheduledToday, KindNoMealScheduledToday, http.StatusUnprocessableEntity, "No meal is scheduled for the member today."},
	{meal.ErrNoMealAtThisTime, KindNoMealAtThisTime, http.StatusUnprocessableEntity, "No meal is being served at this time."},
	{meal.ErrAlreadyCollectedToday, KindAlreadyCollectedToday, http.StatusConflict, "This meal was already collected today."},
	{commands.ErrRecordTimeout, KindTimeout, http.StatusGatewayTimeout, "Recording timed out. Check the member's meal history before retrying."},
}

type MealHandler struct {
	commands commands.MealCommands
}

func NewMealHandler(commands commands.MealCommands) *MealHandler {
	return &MealHandler{commands: commands}
}

// @Summary Record a meal collection
// @Description Checks eligibility and appends a success entry to the meal ledger
// @Tags meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordMealRequest true "Member and collection method"
// @Success 201 {object} resdto.RecordMealResponse
// @Failure 400 {object} httperr.KindResponse
// @Failure 404 {object} httperr.KindResponse
// @Failure 409 {object} httperr.KindResponse
// @Failure 422 {object} httperr.KindResponse
// @Failure 504 {object} httperr.KindResponse
// @Router /meals/record [post]
func (h *MealHandler) Record(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithKind(c, http.StatusInternalServerError, errMissingPrincipal, KindInternal, "Internal server error", nil)
		return
	}

	var req reqdto.RecordMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithKind(c, http.StatusBadRequest, err, KindInvalidArgument, "The request is missing a valid user or collection method.", nil)
		return
	}

	result, err := h.commands.RecordMeal(c.Request.Context(), req.ToInput(principal))
	if err != nil {
		abortMealFailure(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRecordMealResult(result))
}

func abortMealFailure(c *gin.Context, err error) {
	for _, f := range mealFailures {
		if !errs.Is(err, f.target) {
			continue
		}
		httperr.AbortWithKind(c, f.status, err, f.kind, mealFailureMessage(err, f.message), mealFailureDetail(err))
		return
	}
	httperr.AbortWithKind(c, http.StatusInternalServerError, err, KindInternal, "Meal could not be recorded.", nil)
}

// mealFailureMessage names the meal type or the allowed method when the error carries it.
func mealFailureMessage(err error, fallback string) string {
	var notAllowed *meal.MethodNotAllowedError
	if errs.As(err, &notAllowed) {
		return fmt.Sprintf("The member's company only allows %s collection, not %s.", notAllowed.Policy, notAllowed.Attempted)
	}
	var collected *meal.AlreadyCollectedError
	if errs.As(err, &collected) {
		return fmt.Sprintf("The member already collected %s today.", collected.MealType.Label())
	}
	return fallback
}

func mealFailureDetail(err error) any {
	var notAllowed *meal.MethodNotAllowedError
	if errs.As(err, &notAllowed) {
		return gin.H{"policy": notAllowed.Policy, "attempted": notAllowed.Attempted.String()}
	}
	var collected *meal.AlreadyCollectedError
	if errs.As(err, &collected) {
		return gin.H{"mealType": collected.MealType.String()}
	}
	return nil
}

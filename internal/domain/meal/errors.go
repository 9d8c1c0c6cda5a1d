package meal

import (
	"fmt"

	"canteen-backoffice/internal/pkg/errs"
)

var (
	ErrInvalidMealType    = errs.New("invalid meal type")
	ErrInvalidMethod      = errs.New("invalid collection method")
	ErrInvalidEntryStatus = errs.New("invalid meal entry status")
)

// Outcomes of the recording procedure. Each one is a final answer for the caller.
var (
	ErrMemberNotFound        = errs.New("member not found")
	ErrInvalidArgument       = errs.New("invalid argument")
	ErrNoActivePackage       = errs.New("no active package")
	ErrCompanyNotLinked      = errs.New("company not linked")
	ErrMethodNotAllowed      = errs.New("collection method not allowed")
	ErrFeesUnpaid            = errs.New("fees unpaid")
	ErrFeesPending           = errs.New("fees pending")
	ErrNoMealsConfigured     = errs.New("no meals configured")
	ErrNoMealScheduledToday  = errs.New("no meal scheduled today")
	ErrNoMealAtThisTime      = errs.New("no meal at this time")
	ErrAlreadyCollectedToday = errs.New("meal already collected today")
)

type MethodNotAllowedError struct {
	Policy    string
	Attempted Method
}

func (e *MethodNotAllowedError) Error() string {
	return fmt.Sprintf("collection method %q not allowed by company policy %q", e.Attempted, e.Policy)
}

func (e *MethodNotAllowedError) Is(target error) bool {
	return target == ErrMethodNotAllowed
}

type AlreadyCollectedError struct {
	MealType MealType
}

func (e *AlreadyCollectedError) Error() string {
	return fmt.Sprintf("%s already collected today", e.MealType)
}

func (e *AlreadyCollectedError) Is(target error) bool {
	return target == ErrAlreadyCollectedToday
}

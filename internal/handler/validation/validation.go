package validation

import (
	"time"

	"canteen-backoffice/internal/domain/meal"
	"canteen-backoffice/internal/pkg/civil"
	"canteen-backoffice/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var ErrUnexpectedEngine = errs.New("gin validator engine is not go-playground/validator")

// Register adds the domain tags to gin's binding validator. It is idempotent.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return ErrUnexpectedEngine
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	tags := map[string]validator.Func{
		"meal_method": validateMealMethod,
		"meal_type":   validateMealType,
		"civil_time":  validateCivilTime,
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errs.Wrapf(err, "register %s", tag)
		}
	}
	return nil
}

func validateMealMethod(fl validator.FieldLevel) bool {
	_, err := meal.NewMethod(fl.Field().String())
	return err == nil
}

func validateMealType(fl validator.FieldLevel) bool {
	_, err := meal.NewMealType(fl.Field().String())
	return err == nil
}

func validateCivilTime(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if _, err := time.Parse(civil.DateLayout, s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

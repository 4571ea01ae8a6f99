package validator

import (
	"errors"

	"github.com/event-dashboard/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseCategory(fl.Field().String())
		return ok
	})
}

// Validate - validate a request struct
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - shared validator for custom configuration
func GetValidator() *validator.Validate {
	return validate
}

// Details flattens validation failures into field -> failed tag.
func Details(err error) map[string]interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]interface{}{"error": err.Error()}
	}
	out := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

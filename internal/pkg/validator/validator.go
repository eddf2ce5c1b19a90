package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"tablebook/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// RegisterCustomValidators installs domain formats into gin's binding
// engine. "clock" accepts a wall-clock time like "18:30".
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("clock", isClock)
	}
	_ = validate.RegisterValidation("clock", isClock)
}

func isClock(fl validator.FieldLevel) bool {
	_, err := domain.ParseClock(fl.Field().String())
	return err == nil
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

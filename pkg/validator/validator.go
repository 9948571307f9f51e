package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type jsonValidator struct {
	validator *validator.Validate
}

// New returns a struct-tag validator for echo request bodies.
func New() echo.Validator {
	return &jsonValidator{
		validator: validator.New(),
	}
}

func (cv *jsonValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

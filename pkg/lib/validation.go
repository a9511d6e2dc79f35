package lib

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldErrors collects per-field validation failures.
type FieldErrors []string

// Error implements the error interface.
func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "no validation errors"
	}

	return strings.Join(fe, "; ")
}

// ValidateStruct checks the validate tags on s and returns nil when all
// of them pass.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := make(FieldErrors, 0, len(ve))
	for _, e := range ve {
		out = append(out, fmt.Sprintf("%s failed %s", e.Field(), e.ActualTag()))
	}
	return out
}

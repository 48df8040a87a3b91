package common

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

type ErrorValidateResponse struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

var validate = validator.New()

func ValidateStruct(toValidate interface{}) []*ErrorValidateResponse {
	// register function to get tag name from json tags.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	var errorResponse []*ErrorValidateResponse
	if err := validate.Struct(toValidate); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			errorResponse = append(errorResponse, &ErrorValidateResponse{
				Message: err.Error(),
			})
			return errorResponse
		}

		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			for _, valErr := range valErrs {
				errorResponse = append(errorResponse, &ErrorValidateResponse{
					Field:   valErr.Field(),
					Message: strings.TrimSpace(fmt.Sprintf("%s %s", valErr.Tag(), valErr.Param())),
				})
			}
		}
	}
	return errorResponse
}

// ValidateStructToError collapses ValidateStruct results into a single error
// wrapping ErrValidation, one entry per failed field.
func ValidateStructToError(toValidate interface{}) error {
	validationErrs := ValidateStruct(toValidate)
	if len(validationErrs) == 0 {
		return nil
	}

	var merr *multierror.Error
	for _, ve := range validationErrs {
		merr = multierror.Append(merr, fmt.Errorf("%s: %s", ve.Field, ve.Message))
	}

	return fmt.Errorf("%w: %v", ErrValidation, merr.ErrorOrNil())
}

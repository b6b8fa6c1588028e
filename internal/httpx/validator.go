package httpx

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("language_token", validateLanguageToken)
	_ = validate.RegisterValidation("whole_number", validateWholeNumber)
}

func validateWholeNumber(fl validator.FieldLevel) bool {
	_, err := strconv.Atoi(fl.Field().String())
	return err == nil
}

// language tokens are split on ';' and wrapped in brackets in the CSV
func validateLanguageToken(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), ";[]")
}

// ValidateStruct runs the struct's validate tags and converts failures into
// response details. It returns nil when s is valid.
func ValidateStruct(s any) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ErrorDetail{{Field: "", Message: err.Error()}}
	}

	details := make([]ErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		param := fe.Param()

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "whole_number":
			message = fmt.Sprintf("%s must be a whole number", field)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "language_token":
			message = fmt.Sprintf("%s must not contain ';', '[' or ']'", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		details = append(details, ErrorDetail{
			Field:   strings.ToLower(field[:1]) + field[1:],
			Message: message,
		})
	}
	return details
}

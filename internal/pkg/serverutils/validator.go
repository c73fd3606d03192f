package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"support-agent-be/internal/pkg/apperror"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation on a DTO and folds failures
// into a single InvalidArgument error for the error middleware.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return apperror.InvalidArgument(err.Error())
		}
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("field '%s' failed on '%s'", fieldErr.Field(), fieldErr.Tag()))
		}
		return apperror.InvalidArgument(strings.Join(messages, "; "))
	}
	return nil
}

package devserver

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func errorResponse(msg string) ErrorResponse {
	return ErrorResponse{Status: StatusError, Error: msg}
}

// validationResponse turns validator errors into one readable message.
func validationResponse(errs validator.ValidationErrors) ErrorResponse {
	msgs := make([]string, 0, len(errs))

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("field %s must be at most %s characters", err.Field(), err.Param()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("field %s must be positive", err.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param()))
		case "isodate":
			msgs = append(msgs, fmt.Sprintf("field %s must be a date in format YYYY-MM-DD", err.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}
	return errorResponse(strings.Join(msgs, ", "))
}

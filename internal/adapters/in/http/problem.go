package http

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	MIMEApplicationProblemJSON = "application/problem+json"

	validationProblemType  = "https://tools.ietf.org/html/rfc7231#section-6.5.1"
	validationProblemTitle = "One or more validation errors occurred."
)

// ValidationProblem is an RFC 7807 body listing validation failures by property.
type ValidationProblem struct {
	Type     string           `json:"type"`
	Title    string           `json:"title"`
	Status   int              `json:"status"`
	Instance string           `json:"instance,omitempty"`
	Errors   ValidationErrors `json:"errors"`
}

func validationProblem(ctx echo.Context, failures ValidationErrors) error {
	body, err := json.Marshal(ValidationProblem{
		Type:     validationProblemType,
		Title:    validationProblemTitle,
		Status:   http.StatusBadRequest,
		Instance: ctx.Request().URL.Path,
		Errors:   failures,
	})
	if err != nil {
		return err
	}

	return ctx.Blob(http.StatusBadRequest, MIMEApplicationProblemJSON, body)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes carried in ErrorResponse.Code.
const (
	CodeBadRequest = "bad_request"
	CodeInvalid    = "invalid_request"
	CodeNotFound   = "not_found"
)

// BadRequest wraps err in a 400 whose body is an ErrorResponse. Validation
// failures are reported field by field.
func BadRequest(err error) *echo.HTTPError {
	code := CodeBadRequest
	msg := err.Error()

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		code = CodeInvalid
		fe := verrs[0]
		msg = "field " + fe.Field() + " failed " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
	}
	he := echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Code: code, Message: msg})
	return he.WithInternal(err)
}

// NotFound is a 404 whose body is an ErrorResponse.
func NotFound(err error) *echo.HTTPError {
	he := echo.NewHTTPError(http.StatusNotFound, ErrorResponse{Code: CodeNotFound, Message: err.Error()})
	return he.WithInternal(err)
}

// BindAndValidate binds the request into req and runs the registered validator.
// Both failures become a 400.
func BindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return BadRequest(err)
	}
	if err := c.Validate(req); err != nil {
		return BadRequest(err)
	}
	return nil
}

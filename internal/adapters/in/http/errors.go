package http

import (
	"errors"
	"log/slog"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/transit"
	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Error codes carried in servers.Error.Code.
const (
	CodeValidation        = "validation_error"
	CodeNotFound          = "not_found"
	CodeInvalidTransition = "invalid_transition"
	CodeSequenceExhausted = "sequence_exhausted"
	CodeNoOrdersLinked    = "no_orders_linked"
	CodeAccessDenied      = "access_denied"
	CodeUnauthorized      = "unauthorized"
	CodeInternal          = "internal_error"
)

// errorResponse maps an application error onto a status code and body.
func errorResponse(err error) (int, servers.Error) {
	var (
		scopeErr      *access.ScopeError
		noLinkErr     *commands.NoOrdersLinkedError
		validationErr validator.ValidationErrors
		httpErr       *echo.HTTPError
	)

	switch {
	case errors.As(err, &scopeErr):
		return http.StatusForbidden, servers.Error{Code: scopeErr.Reason, Message: scopeErr.Error()}
	case errors.Is(err, access.ErrAccessDenied):
		return http.StatusForbidden, servers.Error{Code: CodeAccessDenied, Message: err.Error()}
	case errors.As(err, &noLinkErr):
		warnings := presentWarnings(noLinkErr.Warnings)
		return http.StatusBadRequest, servers.Error{
			Code:     CodeNoOrdersLinked,
			Message:  noLinkErr.Error(),
			Warnings: &warnings,
		}
	case errors.Is(err, errs.ErrRepository):
		return http.StatusInternalServerError, servers.Error{Code: CodeInternal, Message: "internal error"}
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, servers.Error{Code: CodeNotFound, Message: err.Error()}
	case errors.Is(err, transit.ErrInvalidTransition):
		return http.StatusConflict, servers.Error{Code: CodeInvalidTransition, Message: err.Error()}
	case errors.Is(err, transit.ErrSequenceExhausted):
		return http.StatusConflict, servers.Error{Code: CodeSequenceExhausted, Message: err.Error()}
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, servers.Error{Code: CodeValidation, Message: validationMessage(validationErr)}
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, servers.Error{Code: CodeValidation, Message: err.Error()}
	case errors.As(err, &httpErr):
		return httpErr.Code, servers.Error{Code: httpCode(httpErr.Code), Message: httpMessage(httpErr)}
	default:
		return http.StatusInternalServerError, servers.Error{Code: CodeInternal, Message: "internal error"}
	}
}

func httpCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeValidation
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeAccessDenied
	case http.StatusNotFound:
		return CodeNotFound
	default:
		if status >= http.StatusInternalServerError {
			return CodeInternal
		}
		return http.StatusText(status)
	}
}

func httpMessage(err *echo.HTTPError) string {
	if msg, ok := err.Message.(string); ok {
		return msg
	}
	return http.StatusText(err.Code)
}

// ErrorHandler renders errors that escape handlers and middleware.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		_ = writeError(c, logger, err)
	}
}

func writeError(c echo.Context, logger *slog.Logger, err error) error {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
	}
	return c.JSON(status, body)
}

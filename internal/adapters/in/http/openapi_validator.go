package http

import (
	"errors"
	"fmt"
	"net/http"

	"logistics/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// OpenAPIValidator checks requests against the API document before they reach
// the handlers. Requests for paths the document does not describe are passed
// through so echo can answer them.
type OpenAPIValidator struct {
	router  routers.Router
	skipper middleware.Skipper
}

func NewOpenAPIValidator(doc *openapi3.T, skipper middleware.Skipper) (*OpenAPIValidator, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}
	if skipper == nil {
		skipper = middleware.DefaultSkipper
	}
	return &OpenAPIValidator{router: router, skipper: skipper}, nil
}

func (v *OpenAPIValidator) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if v.skipper(c) {
			return next(c)
		}

		req := c.Request()
		route, pathParams, err := v.router.FindRoute(req)
		if err != nil {
			var routeErr *routers.RouteError
			if errors.As(err, &routeErr) {
				return next(c)
			}
			return err
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
			Options: &openapi3filter.Options{
				// Bearer tokens are checked by the Authenticator.
				AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
			},
		}
		if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
			return c.JSON(http.StatusBadRequest, servers.Error{
				Code:    CodeValidation,
				Message: requestErrorMessage(err),
			})
		}

		return next(c)
	}
}

func requestErrorMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Parameter != nil {
			return fmt.Sprintf("invalid parameter %s: %s", reqErr.Parameter.Name, reasonOf(reqErr))
		}
		if reqErr.RequestBody != nil {
			return "invalid request body: " + reasonOf(reqErr)
		}
		return reasonOf(reqErr)
	}
	return err.Error()
}

func reasonOf(reqErr *openapi3filter.RequestError) string {
	var schemaErr *openapi3.SchemaError
	if errors.As(reqErr.Err, &schemaErr) {
		return schemaErr.Reason
	}
	if reqErr.Reason != "" {
		return reqErr.Reason
	}
	if reqErr.Err != nil {
		return reqErr.Err.Error()
	}
	return "request does not match the API contract"
}

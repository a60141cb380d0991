package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	kperrors "github.com/lyrebird-labs/keepsake/internal/errors"
)

// bindAndValidate decodes the JSON body into req and applies its
// validation tags.
func (s *APIV1Service) bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// toHTTPError translates coded errors into HTTP statuses. Anything
// untagged is treated as an upstream failure.
func toHTTPError(err error) *echo.HTTPError {
	switch kperrors.CodeOf(err) {
	case kperrors.CodeNotFound:
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case kperrors.CodeValidation:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case kperrors.CodeAuth:
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case kperrors.CodeTransport, kperrors.CodeParse:
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

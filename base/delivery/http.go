package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dishswap/exchange-api/domain"
	"github.com/dishswap/exchange-api/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// MakeJsonResp writes the uniform response envelope. Passing an error as
// data maps well known domain errors onto http status codes, so handlers
// can hand errors through without switching on them.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrNotSeller) || errors.Is(err, domain.ErrUnauthorized):
			status = http.StatusForbidden
		case errors.Is(err, domain.ErrZeroPrice) ||
			errors.Is(err, domain.ErrExceedsMaxTradable) ||
			errors.Is(err, domain.ErrConflict) ||
			errors.Is(err, domain.ErrBadParamInput) ||
			errors.Is(err, domain.ErrInvalidNumberFormat):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrCustodyRejected):
			status = http.StatusPaymentRequired
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dishswap/exchange-api/base/ctx"
	"github.com/dishswap/exchange-api/base/delivery"
	"github.com/dishswap/exchange-api/domain"
	"github.com/dishswap/exchange-api/domain/custody"
	"github.com/dishswap/exchange-api/middleware"
)

type handler struct {
	custody custody.Custody
}

// New registers the custody read routes
func New(e *echo.Echo, custodyUC custody.Custody) {
	h := &handler{
		custody: custodyUC,
	}

	g := e.Group("/custody")

	g.GET("/balance/:address", h.getBalance, middleware.IsValidAddress("address"))
}

func (h *handler) getBalance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	account := domain.Address(c.Param("address"))

	if res, err := h.custody.GetPaymentBalance(ctx, account); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

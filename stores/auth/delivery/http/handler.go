package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dishswap/exchange-api/base/ctx"
	"github.com/dishswap/exchange-api/base/delivery"
	"github.com/dishswap/exchange-api/base/ethereum"
	"github.com/dishswap/exchange-api/domain"
)

type authHandler struct {
	auth       domain.AuthUsecase
	signingMsg string
}

func New(e *echo.Echo, auth domain.AuthUsecase, signingMsg string) {
	handler := &authHandler{
		auth:       auth,
		signingMsg: signingMsg,
	}
	g := e.Group("/auth")
	g.POST("/sign", handler.sign)
	g.GET("/signingMsg", handler.getSigningMsg)
}

// sign issues an access token once the caller proves key ownership by
// signing the well known message
func (h *authHandler) sign(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address   domain.Address `json:"address" validate:"required"`
		Signature string         `json:"signature" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if ok, err := ethereum.ValidateMsgSignature([]byte(h.signingMsg), p.Signature, string(p.Address)); err != nil {
		ctx.WithField("err", err).Error("ethereum.ValidateMsgSignature failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidSignature)
	} else if !ok {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, domain.ErrInvalidSignature)
	}

	if tkn, err := h.auth.SignToken(ctx, p.Address); err != nil {
		ctx.WithField("err", err).Error("auth.SignToken failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
	}
}

func (h *authHandler) getSigningMsg(c echo.Context) error {
	res := struct {
		Msg string `json:"msg"`
	}{
		Msg: h.signingMsg,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dishswap/exchange-api/base/ctx"
	"github.com/dishswap/exchange-api/base/delivery"
	"github.com/dishswap/exchange-api/domain"
	"github.com/dishswap/exchange-api/domain/exchange"
	"github.com/dishswap/exchange-api/domain/keys"
	"github.com/dishswap/exchange-api/middleware"
	"github.com/dishswap/exchange-api/service/cache"
	authMiddleware "github.com/dishswap/exchange-api/stores/auth/delivery/http/middleware"
)

const (
	defaultActivityLimit = 20
	maxActivityLimit     = 100
)

type handler struct {
	exchange      exchange.UseCase
	activityCache cache.Service
}

// New registers the listing ledger routes
func New(e *echo.Echo, uc exchange.UseCase, activityCache cache.Service, authMw *authMiddleware.AuthMiddleware) {
	h := &handler{
		exchange:      uc,
		activityCache: activityCache,
	}

	g := e.Group("/exchange")

	g.GET("/asks", h.getAsks)
	g.GET("/asks/desc", h.getAsksDesc)
	g.GET("/asks/count", h.getAskLength)
	g.GET("/asks/user/:address", h.getAsksByUser, middleware.IsValidAddress("address"))
	g.GET("/asks/user/:address/desc", h.getAsksByUserDesc, middleware.IsValidAddress("address"))
	g.GET("/max-tradable-token-id", h.getMaxTradableTokenId)
	g.GET("/activities/:address", h.getActivities, middleware.IsValidAddress("address"))

	g.POST("/sell", h.sell, authMw.Auth())
	g.DELETE("/sell/:tokenId", h.cancelSell, authMw.Auth())
	g.POST("/sell/cancel", h.cancelSellBatch, authMw.Auth())
	g.POST("/buy/:tokenId", h.buy, authMw.Auth())
	g.PUT("/max-tradable-token-id", h.updateMaxTradableTokenId, authMw.Auth(), authMw.IsAdmin())
}

type pageParams struct {
	Offset *int `query:"offset"`
	Limit  *int `query:"limit"`
}

func (h *handler) getAsks(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &pageParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if p.Limit == nil {
		if res, err := h.exchange.GetAsks(ctx); err != nil {
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		} else {
			return delivery.MakeJsonResp(c, http.StatusOK, res)
		}
	}

	offset := 0
	if p.Offset != nil {
		offset = *p.Offset
	}

	if res, err := h.exchange.GetAsksByPage(ctx, offset, *p.Limit); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getAsksDesc(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &pageParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if p.Limit == nil {
		if res, err := h.exchange.GetAsksDesc(ctx); err != nil {
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		} else {
			return delivery.MakeJsonResp(c, http.StatusOK, res)
		}
	}

	offset := 0
	if p.Offset != nil {
		offset = *p.Offset
	}

	if res, err := h.exchange.GetAsksByPageDesc(ctx, offset, *p.Limit); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getAskLength(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.exchange.GetAskLength(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getAsksByUser(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	seller := domain.Address(c.Param("address"))

	if res, err := h.exchange.GetAsksByUser(ctx, seller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getAsksByUserDesc(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	seller := domain.Address(c.Param("address"))

	if res, err := h.exchange.GetAsksByUserDesc(ctx, seller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getMaxTradableTokenId(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.exchange.MaxTradableTokenId(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res.String())
	}
}

func (h *handler) sell(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	seller := c.Get("address").(domain.Address)

	type payload struct {
		TokenId string `json:"tokenId" validate:"required"`
		Price   string `json:"price" validate:"required"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	tokenId, err := domain.ParseTokenId(p.TokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.exchange.ReadyToSellToken(ctx, seller, tokenId, p.Price); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, res)
	}
}

func (h *handler) cancelSell(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	tokenId, err := domain.ParseTokenId(c.Param("tokenId"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.exchange.CancelSellToken(ctx, caller, tokenId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) cancelSellBatch(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		TokenIds []string `json:"tokenIds" validate:"required,min=1"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	tokenIds := make([]domain.TokenId, 0, len(p.TokenIds))
	for _, s := range p.TokenIds {
		tokenId, err := domain.ParseTokenId(s)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		tokenIds = append(tokenIds, tokenId)
	}

	res := h.exchange.CancelSellTokens(ctx, caller, tokenIds)
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	buyer := c.Get("address").(domain.Address)

	tokenId, err := domain.ParseTokenId(c.Param("tokenId"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.exchange.BuyToken(ctx, buyer, tokenId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) updateMaxTradableTokenId(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		TokenId string `json:"tokenId" validate:"required"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	tokenId, err := domain.ParseTokenId(p.TokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.exchange.UpdateMaxTradableTokenId(ctx, caller, tokenId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) getActivities(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	account := domain.Address(c.Param("address")).ToLower()

	type params struct {
		Offset  *int    `query:"offset"`
		Limit   *int    `query:"limit"`
		TokenId *string `query:"tokenId"`
		Type    *string `query:"type"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	offset := 0
	limit := defaultActivityLimit
	if p.Offset != nil {
		offset = *p.Offset
	}
	if p.Limit != nil {
		limit = *p.Limit
	}
	if offset < 0 || limit <= 0 || limit > maxActivityLimit {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	opts := []exchange.ActivityFindAllOptionsFunc{}
	tokenIdKey := ""
	typeKey := ""
	if p.TokenId != nil {
		tokenId, err := domain.ParseTokenId(*p.TokenId)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		opts = append(opts, exchange.ActivityWithTokenId(tokenId))
		tokenIdKey = tokenId.String()
	}
	if p.Type != nil {
		opts = append(opts, exchange.ActivityWithType(exchange.ActivityType(*p.Type)))
		typeKey = *p.Type
	}

	key := keys.RedisKey(keys.PfxActivities, keys.MD5(keys.CustomKey(":",
		string(account), fmt.Sprintf("%d:%d", offset, limit), tokenIdKey, typeKey)))

	res := &[]*exchange.Activity{}
	err := h.activityCache.GetByFunc(ctx, key, res, func() (interface{}, error) {
		acts, err := h.exchange.GetActivities(ctx, account, int32(offset), int32(limit), opts...)
		if err != nil {
			return nil, err
		}
		return &acts, nil
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

package http

import (
	"github.com/gin-gonic/gin"

	"social-admin-dashboard/pkg/response"
)

// Stats godoc
// @Summary     Token supply overview
// @Tags        Tokens
// @Produce     json
// @Security    Bearer
// @Success     200 {object} statsResp
// @Router      /api/v1/tokens/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.uc.Stats(ctx)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(stats))
}

// Mint godoc
// @Summary     Mint tokens to a wallet
// @Description Records a pending mint transaction that settles shortly after. The response
// @Description carries the toast to show.
// @Tags        Tokens
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body supplyReq true "Wallet address and amount"
// @Success     200 {object} supplyResp
// @Failure     400 {object} response.Resp "Invalid input"
// @Router      /api/v1/tokens/mint [POST]
func (h *handler) Mint(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processSupplyReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	out, err := h.uc.Mint(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithData(c, h.mapError(err), map[string]interface{}{"notice": out.Notice})
		return
	}

	response.OK(c, h.newSupplyResp(out))
}

// Burn godoc
// @Summary     Burn tokens held by a wallet
// @Tags        Tokens
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body supplyReq true "Wallet address and amount"
// @Success     200 {object} supplyResp
// @Failure     400 {object} response.Resp "Invalid input"
// @Failure     422 {object} response.Resp "Burn exceeds circulating supply"
// @Router      /api/v1/tokens/burn [POST]
func (h *handler) Burn(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processSupplyReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	out, err := h.uc.Burn(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithData(c, h.mapError(err), map[string]interface{}{"notice": out.Notice})
		return
	}

	response.OK(c, h.newSupplyResp(out))
}

// PriceHistory godoc
// @Summary     Sale price history
// @Tags        Tokens
// @Produce     json
// @Security    Bearer
// @Success     200 {array} pricePointResp
// @Router      /api/v1/tokens/sale/history [GET]
func (h *handler) PriceHistory(c *gin.Context) {
	ctx := c.Request.Context()

	history, err := h.uc.PriceHistory(ctx)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(history))
}

// UpdateSale godoc
// @Summary     Save the sale settings
// @Tags        Tokens
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body saleReq true "Price in USD and whether the sale is open"
// @Success     200 {object} saleResp
// @Failure     400 {object} response.Resp "Invalid price"
// @Router      /api/v1/tokens/sale [PUT]
func (h *handler) UpdateSale(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processSaleReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	out, err := h.uc.UpdateSale(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithData(c, h.mapError(err), map[string]interface{}{"notice": out.Notice})
		return
	}

	response.OK(c, h.newSaleResp(out))
}

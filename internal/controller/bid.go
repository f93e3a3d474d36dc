package controller

import (
	"gigflow-api/internal/entity"
	"gigflow-api/internal/service"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type bidRoutesHandler struct {
	bidService service.Bid
	validate   *validator.Validate
}

func newBidRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *bidRoutesHandler {
	h := &bidRoutesHandler{bidService: services.Bid, validate: v}

	outer.POST("", h.PostBid)
	outer.GET("/:gigId", h.GetGigBids)
	outer.PUT("/:bidId/hire", h.HireBid)

	return h
}

type postBidInput struct {
	GigId   string `json:"gigId" validate:"required,max=100"`
	Message string `json:"message" validate:"required,max=2000"`
}

type bidResponse struct {
	Success bool                   `json:"success"`
	Bid     *entity.BidOutputModel `json:"bid"`
}

// PostBid godoc
// @Summary      Bid on a gig
// @Tags         bids
// @Accept       json
// @Produce      json
// @Param        input  body      postBidInput  true  "Bid"
// @Success      201    {object}  bidResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Security     Bearer
// @Router       /bids [post]
func (h *bidRoutesHandler) PostBid(c echo.Context) error {
	var input postBidInput
	if err := c.Bind(&input); err != nil {
		return respondBadRequest(c, "Input data is not formed correctly")
	}

	if err := h.validate.Struct(input); err != nil {
		return respondBadRequest(c, getAllErrorMessages(err))
	}

	bid, err := h.bidService.SubmitBid(c.Request().Context(), callerFrom(c), input.GigId, input.Message)
	if err != nil {
		return respondError(c, "submit bid", err)
	}

	if e := c.JSON(http.StatusCreated, bidResponse{Success: true, Bid: bid}); e != nil {
		return e
	}

	return nil
}

type getGigBidsInput struct {
	GigId string `param:"gigId" validate:"required,max=100"`
}

type gigBidsResponse struct {
	Success bool                    `json:"success"`
	Bids    []entity.BidOutputModel `json:"bids"`
}

// GetGigBids godoc
// @Summary      List the bids on a gig
// @Description  Only the gig owner may list its bids.
// @Tags         bids
// @Produce      json
// @Param        gigId  path      string  true  "Gig ID"
// @Success      200    {object}  gigBidsResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Security     Bearer
// @Router       /bids/{gigId} [get]
func (h *bidRoutesHandler) GetGigBids(c echo.Context) error {
	input := getGigBidsInput{GigId: c.Param("gigId")}
	if err := h.validate.Struct(input); err != nil {
		return respondBadRequest(c, getAllErrorMessages(err))
	}

	bids, err := h.bidService.ListBidsForGig(c.Request().Context(), callerFrom(c), input.GigId)
	if err != nil {
		return respondError(c, "list gig bids", err)
	}

	if e := c.JSON(http.StatusOK, gigBidsResponse{Success: true, Bids: bids}); e != nil {
		return e
	}

	return nil
}

type hireBidInput struct {
	BidId string `param:"bidId" validate:"required,max=100"`
}

type hireResponse struct {
	Success  bool                   `json:"success"`
	Message  string                 `json:"message"`
	HiredBid *entity.BidOutputModel `json:"hiredBid"`
}

// HireBid godoc
// @Summary      Hire a bid
// @Description  Assigns the gig to the bid's freelancer and rejects every other bid on it.
// @Tags         bids
// @Produce      json
// @Param        bidId  path      string  true  "Bid ID"
// @Success      200    {object}  hireResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Security     Bearer
// @Router       /bids/{bidId}/hire [put]
func (h *bidRoutesHandler) HireBid(c echo.Context) error {
	input := hireBidInput{BidId: c.Param("bidId")}
	if err := h.validate.Struct(input); err != nil {
		return respondBadRequest(c, getAllErrorMessages(err))
	}

	bid, err := h.bidService.Hire(c.Request().Context(), callerFrom(c), input.BidId)
	if err != nil {
		return respondError(c, "hire bid", err)
	}

	if e := c.JSON(http.StatusOK, hireResponse{Success: true, Message: "Bid hired successfully", HiredBid: bid}); e != nil {
		return e
	}

	return nil
}

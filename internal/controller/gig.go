package controller

import (
	"gigflow-api/internal/entity"
	"gigflow-api/internal/service"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type gigRoutesHandler struct {
	gigService service.Gig
	validate   *validator.Validate
}

func newGigRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *gigRoutesHandler {
	h := &gigRoutesHandler{gigService: services.Gig, validate: v}

	outer.POST("", h.PostGig)
	outer.GET("", h.GetOpenGigs)

	return h
}

type postGigInput struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"required,max=5000"`
	Budget      *float64 `json:"budget" validate:"required,gte=0,lt=1000000000000"`
}

type createGigResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Gig     *entity.GigOutputModel `json:"gig"`
}

// PostGig godoc
// @Summary      Create a gig
// @Description  Posts a new open gig owned by the caller.
// @Tags         gigs
// @Accept       json
// @Produce      json
// @Param        input  body      postGigInput  true  "Gig"
// @Success      201    {object}  createGigResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Security     Bearer
// @Router       /gigs [post]
func (h *gigRoutesHandler) PostGig(c echo.Context) error {
	var input postGigInput
	if err := c.Bind(&input); err != nil {
		return respondBadRequest(c, "Input data is not formed correctly")
	}

	if err := h.validate.Struct(input); err != nil {
		return respondBadRequest(c, getAllErrorMessages(err))
	}

	model := &entity.CreateGigInput{
		Title: input.Title, Description: input.Description, Budget: *input.Budget,
	}

	gig, err := h.gigService.CreateGig(c.Request().Context(), callerFrom(c), model)
	if err != nil {
		return respondError(c, "create gig", err)
	}

	if e := c.JSON(http.StatusCreated, createGigResponse{Success: true, Message: "Gig created successfully", Gig: gig}); e != nil {
		return e
	}

	return nil
}

type getOpenGigsInput struct {
	Title string `query:"title" validate:"max=200"`
}

type openGigsResponse struct {
	Success bool                    `json:"success"`
	Count   int                     `json:"count"`
	Gigs    []entity.GigOutputModel `json:"gigs"`
}

// GetOpenGigs godoc
// @Summary      List open gigs
// @Description  Open gigs newest first, optionally filtered by a title keyword.
// @Tags         gigs
// @Produce      json
// @Param        title  query     string  false  "Title keyword"
// @Success      200    {object}  openGigsResponse
// @Failure      401    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Security     Bearer
// @Router       /gigs [get]
func (h *gigRoutesHandler) GetOpenGigs(c echo.Context) error {
	input := getOpenGigsInput{Title: c.QueryParam("title")}
	if err := h.validate.Struct(input); err != nil {
		return respondBadRequest(c, getAllErrorMessages(err))
	}

	gigs, err := h.gigService.ListOpenGigs(c.Request().Context(), input.Title)
	if err != nil {
		return respondError(c, "list open gigs", err)
	}

	if e := c.JSON(http.StatusOK, openGigsResponse{Success: true, Count: len(gigs), Gigs: gigs}); e != nil {
		return e
	}

	return nil
}

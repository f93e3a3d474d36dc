package controller

import (
	"gigflow-api/internal/entity"
	"gigflow-api/internal/service"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type userRoutesHandler struct {
	userService service.User
	validate    *validator.Validate
	opts        RouterOptions
}

func newUserRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate,
	opts RouterOptions, requireAuth echo.MiddlewareFunc) *userRoutesHandler {
	h := &userRoutesHandler{userService: services.User, validate: v, opts: opts}

	outer.POST("/register", h.Register)
	outer.POST("/login", h.Login)
	outer.POST("/logout", h.Logout)
	outer.GET("/me", h.Me, requireAuth)

	return h
}

type registerInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// Register godoc
// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      registerInput  true  "Account"
// @Success      201    {object}  messageResponse
// @Failure      400    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /auth/register [post]
func (h *userRoutesHandler) Register(c echo.Context) error {
	var input registerInput
	if err := c.Bind(&input); err != nil {
		return respondBadRequest(c, "Input data is not formed correctly")
	}

	if err := h.validate.Struct(input); err != nil {
		return respondBadRequest(c, getAllErrorMessages(err))
	}

	if _, err := h.userService.Register(c.Request().Context(), input.Name, input.Email, input.Password); err != nil {
		return respondError(c, "register user", err)
	}

	if e := c.JSON(http.StatusCreated, messageResponse{Success: true, Message: "User registered successfully"}); e != nil {
		return e
	}

	return nil
}

type loginInput struct {
	Email    string `json:"email" validate:"required,max=254"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type userResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	User    *entity.UserProjection `json:"user"`
}

// Login godoc
// @Summary      Log in
// @Description  Sets the gigflow.token cookie on success.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      loginInput  true  "Credentials"
// @Success      200    {object}  userResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /auth/login [post]
func (h *userRoutesHandler) Login(c echo.Context) error {
	var input loginInput
	if err := c.Bind(&input); err != nil {
		return respondBadRequest(c, "Input data is not formed correctly")
	}

	if err := h.validate.Struct(input); err != nil {
		return respondBadRequest(c, getAllErrorMessages(err))
	}

	user, token, err := h.userService.Login(c.Request().Context(), input.Email, input.Password)
	if err != nil {
		return respondError(c, "login", err)
	}

	c.SetCookie(h.tokenCookie(token, h.opts.TokenTTL))
	if e := c.JSON(http.StatusOK, userResponse{Success: true, Message: "Login successful", User: user}); e != nil {
		return e
	}

	return nil
}

// Logout godoc
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/logout [post]
func (h *userRoutesHandler) Logout(c echo.Context) error {
	c.SetCookie(h.tokenCookie("", -1))
	if e := c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Logged out"}); e != nil {
		return e
	}

	return nil
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Security     Bearer
// @Router       /auth/me [get]
func (h *userRoutesHandler) Me(c echo.Context) error {
	user, err := h.userService.Me(c.Request().Context(), callerFrom(c))
	if err != nil {
		return respondError(c, "me", err)
	}

	if e := c.JSON(http.StatusOK, userResponse{Success: true, User: user}); e != nil {
		return e
	}

	return nil
}

// tokenCookie builds the session cookie; a negative ttl expires it.
func (h *userRoutesHandler) tokenCookie(value string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     tokenCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.opts.SecureCookies,
		SameSite: http.SameSiteStrictMode,
	}
	if ttl < 0 {
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
	} else {
		cookie.MaxAge = int(ttl.Seconds())
	}

	return cookie
}

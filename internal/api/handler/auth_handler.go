package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lamsaclean/backoffice-api/internal/api/middleware"
	"github.com/lamsaclean/backoffice-api/internal/core/domain"
	"github.com/lamsaclean/backoffice-api/internal/core/ports"
)

const authCookieMaxAge = 24 * time.Hour

// AuthHandler handles login, verify, and logout.
type AuthHandler struct {
	service       ports.AuthService
	secureCookies bool
}

// NewAuthHandler creates an AuthHandler. secureCookies should be true in
// production so the auth cookie is only sent over HTTPS.
func NewAuthHandler(service ports.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{service: service, secureCookies: secureCookies}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login authenticates a user and returns a JWT token. The token is also set
// as an HTTP-only cookie for browser clients.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, user, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	h.setAuthCookie(c, token, int(authCookieMaxAge.Seconds()))
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Verify validates the presented credential and returns the current user.
//
// @Summary      Verify the current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  authResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	token, ok := middleware.TokenFromRequest(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}

	user, err := h.service.Verify(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{User: user})
}

// Logout clears the auth cookie. There is no server-side token store, so
// this is purely a client-credential cleanup.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.setAuthCookie(c, "", -1)
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

func (h *AuthHandler) setAuthCookie(c echo.Context, token string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}

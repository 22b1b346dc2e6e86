package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/doctorconnect/booking-system/internal/api/metrics"
	"github.com/doctorconnect/booking-system/internal/api/middleware"
	"github.com/doctorconnect/booking-system/internal/core/domain"
	"github.com/doctorconnect/booking-system/internal/core/ports"
)

// AuthHandler handles HTTP requests for login, registration, logout, and
// the current-user view.
type AuthHandler struct {
	authService ports.AuthService
	// cookieTTL matches the token TTL so cookie and token expire together.
	cookieTTL time.Duration
}

func NewAuthHandler(authService ports.AuthService, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, cookieTTL: cookieTTL}
}

// Login authenticates a user, sets the session cookie, and returns the token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	c.SetCookie(h.sessionCookie(result.Token, int(h.cookieTTL.Seconds())))
	return c.JSON(http.StatusOK, toAuthResponse(result.Token, result.User))
}

// Register creates a new account, sets the session cookie, and returns the token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Register(c.Request().Context(), req.FullName, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues(string(result.User.Role)).Inc()

	c.SetCookie(h.sessionCookie(result.Token, int(h.cookieTTL.Seconds())))
	return c.JSON(http.StatusOK, toAuthResponse(result.Token, result.User))
}

// Logout clears the session cookie. The token itself stays valid until its
// natural expiry; there is no server-side revocation.
//
// @Summary      Logout
// @Tags         auth
// @Success      200  "cookie cleared"
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// MaxAge -1 serializes as Max-Age=0, which tells the browser to drop
	// the cookie immediately.
	c.SetCookie(h.sessionCookie("", -1))
	return c.NoContent(http.StatusOK)
}

// Me returns the authenticated account, enriched with the role-specific
// profile when one exists.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	result, err := h.authService.Me(c.Request().Context(), principal.ID)
	if err != nil {
		return err
	}

	u := result.User
	return c.JSON(http.StatusOK, meResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		Profile:   result.Profile,
	})
}

func (h *AuthHandler) sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webproshub/marketplace-gateway/internal/api/cookies"
	"github.com/webproshub/marketplace-gateway/internal/core/domain"
	"github.com/webproshub/marketplace-gateway/internal/core/ports"
)

// AuthHandler owns the credential lifecycle endpoints for both principal
// kinds. Login responses set the session cookie in addition to returning
// the token, so both browser navigation and API clients work.
type AuthHandler struct {
	authService   ports.AuthService
	secureCookies bool
}

func NewAuthHandler(authService ports.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookies: secureCookies}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=CUSTOMER BUSINESS_OWNER"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string            `json:"token,omitempty"`
	User  *domain.Principal `json:"user,omitempty"`
}

// Register creates a new customer or business-owner account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		status := http.StatusInternalServerError
		switch err {
		case domain.ErrAccountExists:
			status = http.StatusConflict
		case domain.ErrInvalidCredentials:
			status = http.StatusBadRequest
		}
		return c.JSON(status, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates a user and sets the authToken session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	return h.login(c, domain.KindUser)
}

// AdminLogin authenticates an admin staff account and sets the adminToken
// session cookie.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Router       /admin-login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	return h.login(c, domain.KindAdmin)
}

func (h *AuthHandler) login(c echo.Context, kind domain.Kind) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	token, user, err := h.authService.Login(c.Request().Context(), kind, req.Email, req.Password)
	if err != nil {
		status := http.StatusUnauthorized
		if err == domain.ErrAccountNotFound {
			status = http.StatusNotFound
		}
		return c.JSON(status, map[string]string{"error": err.Error()})
	}

	cookies.SetToken(c, kind, token, h.secureCookies)
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Logout destroys both principal kinds: registry entries, cached profiles,
// and all session cookies including refreshToken.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	userToken := cookies.GetToken(c, domain.KindUser)
	adminToken := cookies.GetToken(c, domain.KindAdmin)

	h.authService.Logout(c.Request().Context(), userToken, adminToken)
	cookies.ClearAll(c)

	return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
}

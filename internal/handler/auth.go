package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

// AuthHandler owns the /api/auth surface. On login the tokens are returned
// in the body and also set as httpOnly cookies so browser clients need no
// token plumbing.
type AuthHandler struct {
	auth       *service.AuthService
	accessTTL  time.Duration
	refreshTTL time.Duration
	secureCookies bool
}

func NewAuthHandler(auth *service.AuthService, accessTTL, refreshTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{auth: auth, accessTTL: accessTTL, refreshTTL: refreshTTL, secureCookies: secureCookies}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return badRequest(c, "Username and password are required")
	}
	res, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err == nil && res.ErrorCode == 0 {
		data := res.Data.(service.LoginData)
		h.setCookie(c, "token", data.AccessToken, h.accessTTL)
		h.setCookie(c, "refreshToken", data.RefreshToken, h.refreshTTL)
	}
	return respondAuth(c, res, err)
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Refresh accepts the refresh token from the body or the cookie set at
// login.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	_ = c.Bind(&req)
	token := req.RefreshToken
	if token == "" {
		if ck, err := c.Cookie("refreshToken"); err == nil {
			token = ck.Value
		}
	}
	if token == "" {
		return badRequest(c, "Refresh token is required")
	}
	res, err := h.auth.Refresh(c.Request().Context(), token)
	if err == nil && res.ErrorCode == 0 {
		data := res.Data.(service.RefreshData)
		h.setCookie(c, "token", data.AccessToken, h.accessTTL)
	}
	return respondAuth(c, res, err)
}

// Logout revokes the stored refresh token and clears both cookies.
func (h *AuthHandler) Logout(c echo.Context) error {
	res, err := h.auth.Logout(c.Request().Context(), userID(c))
	h.setCookie(c, "token", "", -time.Hour)
	h.setCookie(c, "refreshToken", "", -time.Hour)
	return respond(c, res, err)
}

// Me echoes the identity already decoded from the access token. No store
// lookup happens here; clients wanting the resolved profile use /profile.
func (h *AuthHandler) Me(c echo.Context) error {
	role, _ := c.Get("role").(string)
	email, _ := c.Get("email").(string)
	return c.JSON(http.StatusOK, envelope{
		Success:    true,
		Message:    "User data retrieved successfully",
		StatusCode: http.StatusOK,
		Data: map[string]any{
			"userId": userID(c),
			"role":   role,
			"email":  email,
		},
	})
}

// Profile returns the caller's profile with jurisdiction names resolved.
func (h *AuthHandler) Profile(c echo.Context) error {
	res, err := h.auth.GetProfile(c.Request().Context(), userID(c))
	return respond(c, res, err)
}

func (h *AuthHandler) setCookie(c echo.Context, name, value string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

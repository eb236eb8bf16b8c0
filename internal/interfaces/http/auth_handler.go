package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/raash-api/internal/application/auth"
	"github.com/jhoicas/raash-api/internal/application/dto"
	"github.com/jhoicas/raash-api/internal/application/session"
)

// CookieConfig atributos de la cookie de sesión.
type CookieConfig struct {
	Name   string
	Domain string
	Secure bool
}

// AuthHandler maneja registro, login, logout y estado de sesión.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	sessions *session.Service
	cookie   CookieConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, sessions *session.Service, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions, cookie: cookie}
}

// Register godoc
// @Summary      Registrar cliente
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "full_name, email, password"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if _, err := h.uc.RegisterUser(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Registration successful", Redirect: "/login.html"})
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Crea la sesión y la devuelve en una cookie HTTP-only.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	user, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	token, expires, err := h.sessions.Create(c.UserContext(), *user)
	if err != nil {
		return respondError(c, err)
	}
	c.Cookie(h.sessionCookie(token, expires))
	return c.JSON(dto.MessageResponse{Message: "Login successful", Redirect: "/homepage.html"})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Destroy(c.UserContext(), c.Cookies(h.cookie.Name)); err != nil {
		return respondError(c, err)
	}
	c.Cookie(h.sessionCookie("", time.Unix(0, 0)))
	return c.JSON(dto.MessageResponse{Message: "Logged out successfully"})
}

// CheckAuth godoc
// @Summary      Estado de la sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.CheckAuthResponse
// @Router       /api/check-auth [get]
func (h *AuthHandler) CheckAuth(c *fiber.Ctx) error {
	user := GetSessionUser(c)
	if user == nil {
		return c.JSON(dto.CheckAuthResponse{Authenticated: false})
	}
	return c.JSON(dto.CheckAuthResponse{
		Authenticated: true,
		UserType:      user.UserType,
		UserID:        user.UserID,
		Email:         user.Email,
		FullName:      user.FullName,
	})
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Domain:   h.cookie.Domain,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

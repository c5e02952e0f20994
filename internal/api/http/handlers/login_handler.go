package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-portal/internal/api/dto"
	"github.com/spec-kit/employee-portal/internal/auth"
	"github.com/spec-kit/employee-portal/internal/session"
	"github.com/spec-kit/employee-portal/internal/ui"
	apperrors "github.com/spec-kit/employee-portal/pkg/util"
)

// LoginHandler owns the login, logout and root surfaces.
type LoginHandler struct {
	verifier     *auth.Authenticator
	sessions     *session.Manager
	cookieName   string
	cookieSecure bool
}

// NewLoginHandler constructs handler.
func NewLoginHandler(verifier *auth.Authenticator, sessions *session.Manager, cookieName string, cookieSecure bool) *LoginHandler {
	return &LoginHandler{
		verifier:     verifier,
		sessions:     sessions,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
	}
}

func (h *LoginHandler) hasSession(c *fiber.Ctx) bool {
	token := c.Cookies(h.cookieName)
	if token == "" {
		return false
	}
	_, err := h.sessions.Validate(c.UserContext(), token)
	return err == nil
}

// Root handles GET /.
func (h *LoginHandler) Root(c *fiber.Ctx) error {
	if h.hasSession(c) {
		return c.Redirect("/employees", fiber.StatusSeeOther)
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// ShowLogin handles GET /login. Already-authenticated clients go
// straight to the listing.
func (h *LoginHandler) ShowLogin(c *fiber.Ctx) error {
	if h.hasSession(c) {
		return c.Redirect("/employees", fiber.StatusSeeOther)
	}
	return render(c, http.StatusOK, ui.LoginPage(""))
}

// Login handles POST /login. A failed verification re-renders the form
// with one generic message for every failure shape.
func (h *LoginHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return render(c, http.StatusUnauthorized, ui.LoginPage("Invalid username or password"))
	}

	username, err := h.verifier.Verify(c.UserContext(), req.Username, req.Password)
	if err != nil {
		if apperrors.IsCode(err, "INVALID_CREDENTIALS") {
			return render(c, http.StatusUnauthorized, ui.LoginPage("Invalid username or password"))
		}
		return err
	}

	// one active token per client: retire whatever the cookie carried
	if old := c.Cookies(h.cookieName); old != "" {
		_ = h.sessions.Destroy(c.UserContext(), old)
	}

	token, err := h.sessions.Create(c.UserContext(), username)
	if err != nil {
		return apperrors.NewStoreUnavailable(err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Expires:  time.Now().Add(h.sessions.TTL()),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/employees", fiber.StatusSeeOther)
}

// Logout handles GET /logout. Destroy is idempotent, so a stale or
// missing cookie still lands on the login page.
func (h *LoginHandler) Logout(c *fiber.Ctx) error {
	token := c.Cookies(h.cookieName)
	if err := h.sessions.Destroy(c.UserContext(), token); err != nil {
		return apperrors.NewStoreUnavailable(err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/login", fiber.StatusSeeOther)
}

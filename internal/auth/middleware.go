package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-portal/internal/session"
	apperrors "github.com/spec-kit/employee-portal/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller. It is the capability
// value every record operation requires; a zero Principal holds no
// authority.
type Principal struct {
	Username string
}

// Authenticated reports whether the principal carries an identity.
func (p Principal) Authenticated() bool {
	return p.Username != ""
}

// SessionMiddleware validates session cookies and loads principals.
type SessionMiddleware struct {
	sessions   *session.Manager
	cookieName string
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(sessions *session.Manager, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, cookieName: cookieName}
}

// Handle enforces authentication for protected surfaces. A missing or
// invalid cookie redirects to the login page; protected content is
// never rendered without an active session.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	token := c.Cookies(m.cookieName)
	username, err := m.sessions.Validate(c.UserContext(), token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return apperrors.NewStoreUnavailable(err)
	}

	c.Locals(principalKey, Principal{Username: username})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated identity.
func PrincipalFromContext(c *fiber.Ctx) (Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return Principal{}, false
	}
	principal, ok := val.(Principal)
	return principal, ok
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseadmin/internal/app/auth"
	pkgauth "github.com/yigit/courseadmin/internal/pkg/auth"
	"github.com/yigit/courseadmin/internal/pkg/metrics"
)

const sessionKey = "session"

// SessionResolver turns a raw token into a session, nil when the token is unusable
type SessionResolver interface {
	Session(token string) *auth.Session
}

// AuthMiddleware resolves the caller's session and runs the route gate
type AuthMiddleware struct {
	sessions   SessionResolver
	cookieName string
	public     map[string]bool
}

// NewAuthMiddleware creates a new AuthMiddleware. Paths listed in public skip the gate.
func NewAuthMiddleware(sessions SessionResolver, cookieName string, public ...string) *AuthMiddleware {
	m := &AuthMiddleware{
		sessions:   sessions,
		cookieName: cookieName,
		public:     make(map[string]bool, len(public)),
	}
	for _, p := range public {
		m.public[p] = true
	}
	return m
}

// Session attaches the session from the cookie, or from a Bearer header for API clients
func (m *AuthMiddleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			token, _ = pkgauth.ExtractBearerToken(c.GetHeader("Authorization"))
		}
		if session := m.sessions.Session(token); session != nil {
			c.Set(sessionKey, session)
		}
		c.Next()
	}
}

// Gate applies the authorization decision for the request path. Denied requests go to the
// login page with the path as callback, misrouted signed-in users go to their own area.
func (m *AuthMiddleware) Gate() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if m.public[path] || isPublicPrefix(path) {
			c.Next()
			return
		}

		decision := auth.Authorize(CurrentSession(c), path)
		metrics.RecordGateDecision(decision.Kind.String())
		if decision.Kind != auth.Allow {
			c.Redirect(http.StatusSeeOther, decision.Location)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session attached by Session, nil for anonymous requests
func CurrentSession(c *gin.Context) *auth.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*auth.Session)
	return session
}

func isPublicPrefix(path string) bool {
	return auth.InArea(path, "/swagger")
}

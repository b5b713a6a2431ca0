package middleware

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/foodreview-backend/internal/app/model"
	"github.com/ikkim/foodreview-backend/internal/app/service"
	"github.com/ikkim/foodreview-backend/internal/errors"
)

// Context keys for the session user
const (
	UserIDKey       = "user_id"
	UserKey         = "user"
	SessionTokenKey = "session_token"
)

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// AuthMiddleware resolves the session cookie to a user and issues or clears
// the cookie on login and logout.
type AuthMiddleware struct {
	sessions service.SessionService
	cookie   CookieConfig
}

func NewAuthMiddleware(sessions service.SessionService, cookie CookieConfig) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		cookie:   cookie,
	}
}

// Authenticate requires a live session
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		token, _ := c.Cookie(m.cookie.Name)
		user, err := m.sessions.Identify(c.Request.Context(), token)
		if err != nil {
			switch {
			case stderrors.Is(err, service.ErrNoSession):
				log.Debug("Missing or expired session", map[string]interface{}{
					"path": c.Request.URL.Path,
				})
				errors.Unauthorized(c, "Login required")
			case stderrors.Is(err, service.ErrStaleSession):
				m.clearCookie(c)
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthSessionExpired, "Session is no longer valid. Please log in again")
			default:
				log.Error("Failed to resolve session", err, map[string]interface{}{
					"path": c.Request.URL.Path,
				})
				errors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		m.setUser(c, user, token)
		log.Debug("User authenticated successfully", map[string]interface{}{
			"user_id": user.ID,
		})
		c.Next()
	}
}

// OptionalAuthenticate sets the user when a live session is present and
// otherwise continues as a guest.
func (m *AuthMiddleware) OptionalAuthenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookie.Name)
		if err != nil || token == "" {
			c.Next()
			return
		}

		user, err := m.sessions.Identify(c.Request.Context(), token)
		if err != nil {
			if stderrors.Is(err, service.ErrStaleSession) {
				m.clearCookie(c)
			}
			GetLoggerFromContext(c).Debug("Session not usable - continuing as guest", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.Next()
			return
		}

		m.setUser(c, user, token)
		c.Next()
	}
}

// StartSession opens a session for userID and sets the session cookie.
func (m *AuthMiddleware) StartSession(c *gin.Context, userID uint) error {
	token, err := m.sessions.Start(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookie.Name, token, int(m.cookie.MaxAge.Seconds()), "/", "", m.cookie.Secure, true)
	return nil
}

// EndSession destroys the current session, if any, and clears the cookie.
func (m *AuthMiddleware) EndSession(c *gin.Context) error {
	token := c.GetString(SessionTokenKey)
	if token == "" {
		token, _ = c.Cookie(m.cookie.Name)
	}
	m.clearCookie(c)
	return m.sessions.End(c.Request.Context(), token)
}

func (m *AuthMiddleware) setUser(c *gin.Context, user *model.User, token string) {
	c.Set(UserIDKey, user.ID)
	c.Set(UserKey, user)
	c.Set(SessionTokenKey, token)
}

func (m *AuthMiddleware) clearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookie.Name, "", -1, "/", "", m.cookie.Secure, true)
}

// GetUserID extracts user ID from context
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := userID.(uint)
	return id, ok
}

// GetUser extracts the session user from context
func GetUser(c *gin.Context) (*model.User, bool) {
	user, exists := c.Get(UserKey)
	if !exists {
		return nil, false
	}
	u, ok := user.(*model.User)
	return u, ok
}

package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hiring-platform-api/internal/constants"
	apierrors "github.com/yukikurage/hiring-platform-api/internal/errors"
	"github.com/yukikurage/hiring-platform-api/internal/logger"
	"github.com/yukikurage/hiring-platform-api/internal/models"
	"github.com/yukikurage/hiring-platform-api/internal/services"
)

// PrincipalResolver turns a session token into the current caller.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, token string) (*services.Principal, error)
}

// RequireAuth resolves the caller from a bearer token or the session cookie.
// The user is reloaded from the store on every request.
func RequireAuth(resolver PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		principal, err := resolver.ResolvePrincipal(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, services.ErrUnauthenticated) {
				apierrors.Unauthorized(c, err.Error())
			} else {
				logger.Error("failed to resolve principal", "error", err)
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		setPrincipal(c, principal, token)
		c.Next()
	}
}

// OptionalAuth attaches the caller when a valid token is present and
// otherwise lets the request through anonymously.
func OptionalAuth(resolver PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if principal, err := resolver.ResolvePrincipal(c.Request.Context(), token); err == nil {
				setPrincipal(c, principal, token)
			}
		}
		c.Next()
	}
}

// RequireRole rejects callers whose current role is not listed. Use after RequireAuth.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}
		if !principal.HasRole(roles...) {
			apierrors.Forbidden(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, constants.BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, constants.BearerPrefix))
	}

	// No session store on this route group.
	if _, ok := c.Get(sessions.DefaultKey); !ok {
		return ""
	}
	session := sessions.Default(c)
	if token, ok := session.Get(constants.SessionKeyToken).(string); ok {
		return token
	}
	return ""
}

func setPrincipal(c *gin.Context, principal *services.Principal, token string) {
	c.Set(constants.ContextKeyPrincipal, *principal)
	c.Set(constants.ContextKeyUserID, principal.UserID)
	c.Set(constants.ContextKeyToken, token)
}

// GetPrincipal retrieves the current caller from context
func GetPrincipal(c *gin.Context) (services.Principal, bool) {
	v, exists := c.Get(constants.ContextKeyPrincipal)
	if !exists {
		return services.Principal{}, false
	}
	p, ok := v.(services.Principal)
	return p, ok
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(constants.ContextKeyUserID)
	return userID, userID != ""
}

// GetToken returns the token the caller authenticated with
func GetToken(c *gin.Context) string {
	return c.GetString(constants.ContextKeyToken)
}

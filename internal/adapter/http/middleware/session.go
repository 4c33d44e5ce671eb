package middleware

import (
	"log"
	"net/http"
	"strings"

	"pharma_express/internal/auth"
	"pharma_express/internal/infrastructure/medapi"
	"pharma_express/internal/usecase"
	"pharma_express/pkg"

	"github.com/gin-gonic/gin"
)

// Gin context keys set by RequireSession.
const (
	ContextUserID    = "user_id"
	ContextSessionID = "session_id"
	ContextEmail     = "email"
)

// RequireSession validates the client JWT, loads its server-side session and
// injects the user identity into the gin context. The upstream medical API
// token from the session is attached to the request context so every
// downstream gateway call carries it.
func RequireSession(authUC usecase.IAuthUseCase, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			unauthorized(c, "Missing bearer token")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		claims, err := auth.ParseToken(tokenString, secret)
		if err != nil {
			log.Printf("[auth][middleware] token rejected err=%v", err)
			unauthorized(c, "Invalid token")
			return
		}

		sess, err := authUC.SessionByID(c.Request.Context(), claims.SessionID)
		if err != nil {
			log.Printf("[auth][middleware] session lookup failed session_id=%s err=%v", claims.SessionID, err)
			unauthorized(c, "Session expired")
			return
		}

		c.Set(ContextUserID, sess.UserID)
		c.Set(ContextSessionID, sess.ID)
		c.Set(ContextEmail, sess.Email)
		c.Request = c.Request.WithContext(medapi.WithToken(c.Request.Context(), sess.Token))
		c.Next()
	}
}

func unauthorized(c *gin.Context, msg string) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", msg, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

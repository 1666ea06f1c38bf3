package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AshilyAnnMathew/TodoServer/internal/core/domain"
	"github.com/AshilyAnnMathew/TodoServer/internal/core/ports"
	"github.com/AshilyAnnMathew/TodoServer/pkg/apierrors"
)

const (
	principalContextKey = "principal"
	taskStoreContextKey = "taskStore"
)

// AuthMiddleware authenticates every request on the task surface. It resolves
// the bearer token into a principal and attaches both the principal and a
// store handle scoped to it. The handle is built fresh per request and never
// cached, so its lifetime is bounded by this one request.
func AuthMiddleware(verifier ports.TokenVerifier, scoper ports.TaskStoreScoper) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgMissingToken, lang),
			)
			return
		}

		principal, err := verifier.VerifyToken(c.Request.Context(), token)
		if err != nil {
			zap.L().Info("token verification rejected", zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
			)
			return
		}

		c.Set(principalContextKey, principal)
		c.Set(taskStoreContextKey, scoper.ScopedTo(principal))
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

// GetPrincipal returns the authenticated principal attached by AuthMiddleware.
func GetPrincipal(c *gin.Context) (domain.Principal, bool) {
	value, exists := c.Get(principalContextKey)
	if !exists {
		return domain.Principal{}, false
	}
	principal, ok := value.(domain.Principal)
	return principal, ok
}

// GetTaskStore returns the request-scoped store handle attached by
// AuthMiddleware.
func GetTaskStore(c *gin.Context) (ports.TaskStore, bool) {
	value, exists := c.Get(taskStoreContextKey)
	if !exists {
		return nil, false
	}
	store, ok := value.(ports.TaskStore)
	return store, ok
}

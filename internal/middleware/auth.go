package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/innovate-connect/innovate/internal/access"
	"github.com/innovate-connect/innovate/internal/auth"
	"github.com/innovate-connect/innovate/internal/errs"
	"github.com/innovate-connect/innovate/internal/types"
	"github.com/innovate-connect/innovate/internal/utils"
)

// TokenVerifier is satisfied by *auth.TokenIssuer.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Authenticate turns a valid bearer token into an access.Principal stored on
// the gin context. It never touches the database.
func Authenticate(verifier TokenVerifier) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := verifier.Verify(strings.TrimSpace(parts[1]))

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		accountID, err := claims.AccountID()

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		ctx.Set(types.ContextPrincipalKey, access.Principal{
			AccountID: accountID,
			Email:     claims.Email,
			Role:      claims.Role,
		})
		ctx.Next()
	}
}

// RequireRoles aborts with 403 unless the authenticated principal's role is
// granted action on resource. It must run after Authenticate.
func RequireRoles(guard *access.Guard, resource, action string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal, err := utils.GetPrincipal(ctx)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		if err := guard.Authorize(principal, resource, action); err != nil {
			_ = ctx.Error(err)
			ctx.AbortWithStatusJSON(errs.Status(errs.KindOf(err)), gin.H{"error": errs.Message(err)})
			return
		}

		ctx.Next()
	}
}

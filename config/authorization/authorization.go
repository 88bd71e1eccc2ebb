package authorization

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"DoctorsPortal/config/jwt"
	"DoctorsPortal/models"
	"DoctorsPortal/role"
	"DoctorsPortal/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// EmailKey is the gin context key holding the verified email claim.
const EmailKey = "decodedEmail"

type TokenVerifier interface {
	VerifyToken(token string) (*jwt.Claims, error)
}

type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

/*
* No Authorization header is 401
* Anything that fails to verify is 403
* On success the email claim is set on the context
 */
func JWTAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(util.ErrUnauthorized))
			return
		}
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, util.FailedResponse(util.ErrForbidden))
			return
		}
		claims, err := verifier.VerifyToken(strings.TrimSpace(token))
		if err != nil {
			log.Debug().Err(err).Msg("token verification failed")
			c.AbortWithStatusJSON(http.StatusForbidden, util.FailedResponse(util.ErrForbidden))
			return
		}
		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

/*
* Must run after JWTAuth
* Looks the caller up on every request and requires the admin role
 */
func RequireAdmin(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := Email(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(util.ErrUnauthorized))
			return
		}
		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, util.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, util.FailedResponse(util.ErrForbidden))
				return
			}
			log.Error().Err(err).Str("email", email).Msg("Error while fetching user for admin check")
			c.AbortWithStatusJSON(http.StatusInternalServerError, util.FailedResponse(err))
			return
		}
		if !role.IsAdmin(user.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, util.FailedResponse(util.ErrForbidden))
			return
		}
		c.Next()
	}
}

// Email returns the verified email set by JWTAuth.
func Email(c *gin.Context) (string, bool) {
	email := c.GetString(EmailKey)
	return email, email != ""
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"vhotelok-backend/errs"
	"vhotelok-backend/services"
	"vhotelok-backend/utils"
)

const userIDKey = "userID"

// AccessTokenCookie is the cookie carrying the JWT issued on login.
const AccessTokenCookie = "access_token"

// RequireAuth resolves the access_token cookie into a user id and
// aborts with 401 when it is absent or invalid.
func RequireAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AccessTokenCookie)
		if err != nil || token == "" {
			utils.Error(c, errs.ErrNoAccessToken)
			c.Abort()
			return
		}

		userID, err := auth.DecodeToken(token)
		if err != nil {
			utils.Error(c, errs.ErrIncorrectToken)
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the id RequireAuth stored on the context.
func UserID(c *gin.Context) uint {
	id, _ := c.Get(userIDKey)
	userID, _ := id.(uint)
	return userID
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/tmarqs/eventstay/internal/helpers"
	"github.com/tmarqs/eventstay/internal/models"
)

// JWTAuthMiddleware validates the bearer token and checks it against a live
// session before exposing the user id to handlers via c.Get("user_id").
func JWTAuthMiddleware(secret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Missing bearer token.")
			c.Abort()
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid token.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid token claims.")
			c.Abort()
			return
		}
		rawUserID, ok := claims["user_id"].(float64)
		if !ok {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid token claims.")
			c.Abort()
			return
		}

		var session models.Session
		if err := db.Where("token = ?", raw).First(&session).Error; err != nil {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Session not found.")
			c.Abort()
			return
		}

		c.Set("user_id", uint(rawUserID))
		c.Next()
	}
}

package middleware

import (
	"fmt"
	"strings"

	"github.com/carneiroDotDev/sole-and-ankle/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// AdminRole is the role claim required on admin tokens
const AdminRole = "admin"

// AdminAuthMiddleware accepts HS256 bearer tokens signed with secret whose role claim is admin.
// With an empty secret every request is rejected.
func AdminAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if secret == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.LogWarn("Admin request without usable credentials: %s", c.Request.URL.Path)
			utils.Unauthorized(c, utils.ErrUnauthorized)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			utils.LogWarn("Invalid admin token: %v", err)
			utils.Unauthorized(c, utils.ErrInvalidToken)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["role"] != AdminRole {
			utils.LogWarn("Token without admin role rejected")
			utils.Forbidden(c, utils.ErrForbidden)
			c.Abort()
			return
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Set("admin", sub)
		} else {
			c.Set("admin", AdminRole)
		}
		c.Next()
	}
}

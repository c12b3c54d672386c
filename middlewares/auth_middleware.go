package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Calorties/calorties-api/models"
	"github.com/Calorties/calorties-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const accountKey = "account"

// AuthMiddleware verifies the Bearer token and resolves it to an Account.
// Missing, malformed and expired tokens all end the request with 401.
func AuthMiddleware(db *gorm.DB, tokens *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		subject, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, utils.ErrTokenExpired) {
				msg = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		var account models.Account
		if err := db.WithContext(c.Request.Context()).
			Where("username = ?", subject).First(&account).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "account not found"})
			return
		}

		c.Set(accountKey, &account)
		c.Next()
	}
}

// CurrentAccount returns the account resolved by AuthMiddleware.
func CurrentAccount(c *gin.Context) (*models.Account, bool) {
	v, ok := c.Get(accountKey)
	if !ok {
		return nil, false
	}
	account, ok := v.(*models.Account)
	return account, ok
}

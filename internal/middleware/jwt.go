package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"challan_tracker/internal/models"
)

// tokenTTL is fixed at 24h. The two deployed variants of the old
// backend disagreed (1h vs 7d); one value is chosen here deliberately.
const tokenTTL = 24 * time.Hour

// OfficerKey is the context key under which RequireAuth attaches the
// authenticated officer.
const OfficerKey = "officer"

var secret = []byte(getJWTSecret())

func getJWTSecret() string {
	if val := os.Getenv("JWT_SECRET"); val != "" {
		return val
	}
	return "supersecret" // fallback
}

// GenerateToken signs a token embedding the officer id. Tokens remain
// valid until expiry regardless of later server-side changes; there is
// no revocation.
func GenerateToken(officerID uint) (string, error) {
	claims := jwt.MapClaims{
		"id":  officerID,
		"exp": time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// parseToken verifies signature and expiry and returns the embedded
// officer id.
func parseToken(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return 0, errors.New("invalid token claims")
	}
	return uint(id), nil
}

// RequireAuth ensures a valid bearer token is present and that the id
// it carries still resolves to an officer, then attaches the loaded
// record for downstream handlers.
func RequireAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
			return
		}

		id, err := parseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token invalid"})
			return
		}

		var officer models.Officer
		if err := db.First(&officer, id).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Officer not found"})
			return
		}

		c.Set(OfficerKey, &officer)
		c.Next()
	}
}

// CurrentOfficer returns the identity attached by RequireAuth. Only
// valid on routes behind that middleware.
func CurrentOfficer(c *gin.Context) *models.Officer {
	return c.MustGet(OfficerKey).(*models.Officer)
}

// RequireRole gates a route on an exact role match. Runs after
// RequireAuth has attached the officer; no role implies another.
func RequireRole(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get(OfficerKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}
		officer := val.(*models.Officer)
		if officer.Role != required {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied: " + string(required) + "s only"})
			return
		}
		c.Next()
	}
}

// AdminOnly restricts a route to admins.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// OfficerOnly restricts a route to field officers.
func OfficerOnly() gin.HandlerFunc {
	return RequireRole(models.RoleOfficer)
}

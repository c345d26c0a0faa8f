package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/clariohq/clario-backend/api/response"
)

const (
	ctxUserIDKey   = "userID"
	ctxUsernameKey = "username"
)

// Claims is the JWT payload issued at login.
type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token valid for ttl.
func GenerateToken(secret, userID, username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "clario-backend",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the signature and expiry and returns the claims.
func ParseToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Auth rejects requests without a valid bearer token and stores the
// caller's identity on the context.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "authorization header missing")
			c.Abort()
			return
		}
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			response.Unauthorized(c, "authorization header must be a bearer token")
			c.Abort()
			return
		}
		claims, err := ParseToken(secret, tokenString)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}
		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUsernameKey, claims.Username)
		c.Next()
	}
}

// UserID returns the authenticated user's id, empty when unauthenticated.
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserIDKey)
}

// Username returns the authenticated username.
func Username(c *gin.Context) string {
	return c.GetString(ctxUsernameKey)
}

package middlewares

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const (
	// SessionCookie carries the signed session token; all endpoints expect
	// cookie credentials, with a Bearer header accepted as fallback.
	SessionCookie = "session"

	authHeader   = "Authorization"
	bearerPrefix = "Bearer "

	sessionTTL = 24 * time.Hour
)

var (
	secretOnce sync.Once
	jwtSecret  []byte
	secretErr  error
)

func loadJWTSecret() error {
	secretOnce.Do(func() {
		// Prefer JWT_SECRET_KEY, fallback to JWT_SECRET
		sec := os.Getenv("JWT_SECRET_KEY")
		if strings.TrimSpace(sec) == "" {
			sec = os.Getenv("JWT_SECRET")
		}
		if strings.TrimSpace(sec) == "" {
			secretErr = errors.New("JWT secret not configured (set JWT_SECRET_KEY or JWT_SECRET)")
			return
		}
		jwtSecret = []byte(sec)
	})
	return secretErr
}

// sessionToken extracts the raw token from the session cookie or, failing
// that, from an Authorization: Bearer header.
func sessionToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies(SessionCookie)); v != "" {
		return v
	}
	h := c.Get(authHeader)
	if h != "" && strings.HasPrefix(strings.ToLower(h), strings.ToLower(bearerPrefix)) {
		return strings.TrimSpace(h[len(bearerPrefix):])
	}
	return ""
}

// ParseSession validates a raw token (HS256 only) and returns the user ID.
func ParseSession(raw string) (string, error) {
	if err := loadJWTSecret(); err != nil {
		return "", err
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	var claims jwt.RegisteredClaims
	token, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", errors.New("token missing subject")
	}
	return claims.Subject, nil
}

// IsAuthenticated validates the session and populates c.Locals("userID").
func IsAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := loadJWTSecret(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "server auth not configured",
			})
		}

		raw := sessionToken(c)
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
		}
		userID, err := ParseSession(raw)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired session"})
		}

		c.Locals("userID", userID)
		return c.Next()
	}
}

// SessionUserID returns the authenticated user ID from the session cookie
// without failing the request; "" means not authenticated. Used by /auth/check.
func SessionUserID(c *fiber.Ctx) string {
	raw := sessionToken(c)
	if raw == "" {
		return ""
	}
	userID, err := ParseSession(raw)
	if err != nil {
		return ""
	}
	return userID
}

// GenerateJWT signs a new HS256 session token for the given user.
func GenerateJWT(userID string) (string, error) {
	if err := loadJWTSecret(); err != nil {
		return "", err
	}
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// SetSessionCookie attaches the session token as an HTTP-only cookie.
func SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// Package middleware provides authentication, logging, metrics, tracing and rate limiting
// middleware for the HTTP server.
package middleware

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"sangha/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the httpOnly cookie carrying the session token.
const SessionCookieName = "token"

// Session tokens must name this issuer and audience.
const (
	TokenIssuer   = "sangha-ask"
	TokenAudience = "sangha-ask-client"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

var (
	errMissingToken  = errors.New("authentication required")
	errInvalidHeader = errors.New("invalid authorization header format")
	errInvalidToken  = errors.New("invalid or expired token")
	errInvalidClaims = errors.New("invalid token claims")
)

// TokenFromRequest returns the session token from the session cookie, falling back to a
// Bearer Authorization header for API clients.
func TokenFromRequest(c *fiber.Ctx) (string, error) {
	if token := c.Cookies(SessionCookieName); token != "" {
		return token, nil
	}

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", errMissingToken
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errInvalidHeader
	}
	return parts[1], nil
}

// ParseUserID validates an HS256 session token, including its issuer and audience,
// and returns the user ID in its subject.
func ParseUserID(secret, tokenString string) (uint, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return []byte(secret), nil
	}
	token, err := jwt.Parse(tokenString, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithAudience(TokenAudience),
	)
	if err != nil || !token.Valid {
		return 0, errInvalidToken
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return 0, errInvalidClaims
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil || userID == 0 {
		return 0, errInvalidClaims
	}
	return uint(userID), nil
}

// AuthRequired is a middleware that enforces authentication for protected routes.
func AuthRequired(c *fiber.Ctx) error {
	token, err := TokenFromRequest(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	userID, err := ParseUserID(cfg.JWTSecret, token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	setUser(c, userID)
	return c.Next()
}

// setUser stores the user ID in locals and in the request context for the logger.
func setUser(c *fiber.Ctx, userID uint) {
	c.Locals("userID", userID)
	c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, userID))
}

// OptionalAuth sets the user ID when a valid session is present and never rejects.
// Public read endpoints use it to personalise vote summaries.
func OptionalAuth(c *fiber.Ctx) error {
	if token, err := TokenFromRequest(c); err == nil {
		if userID, err := ParseUserID(cfg.JWTSecret, token); err == nil {
			setUser(c, userID)
		}
	}
	return c.Next()
}

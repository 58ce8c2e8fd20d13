package http

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/plantnet/marketplace-api/internal/application/dto"
	"github.com/plantnet/marketplace-api/pkg/jwt"
)

// Locals key for the verified email in Fiber.
const LocalEmail = "email"

// TokenCookie is the HTTP-only cookie carrying the credential when no
// Authorization header is sent.
const TokenCookie = "token"

// RoleResolver looks up the stored role for an email. Empty string when the
// user has no record. Queried on every role-gated request; no caching.
type RoleResolver interface {
	RoleOf(ctx context.Context, email string) (string, error)
}

// AuthMiddleware validates the bearer JWT (Authorization header first, then
// the token cookie) and puts the verified email in c.Locals. Missing or
// invalid credentials are 401; role decisions belong to RequireRole.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			tokenString = c.Cookies(TokenCookie)
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "credential required"})
		}
		email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireRole re-resolves the stored role for the verified email and admits
// the request only when it is one of the allowed roles. Runs after
// AuthMiddleware; a request without a verified identity never gets here.
// The denial payload carries the actual role for client debugging.
func RequireRole(resolver RoleResolver, allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := GetEmail(c)
		if email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "credential required"})
		}
		actual, err := resolver.RoleOf(c.Context(), email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if d := authorize(actual, allowed...); !d.allowed {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: fmt.Sprintf("requires role %s; your role is %q", strings.Join(allowed, " or "), d.actual),
			})
		}
		return c.Next()
	}
}

// decision is the outcome of a role check.
type decision struct {
	allowed bool
	actual  string
}

// authorize is the pure role decision: actual stored role against the allowed
// set. An empty actual role (no user record) never passes.
func authorize(actual string, allowed ...string) decision {
	if actual == "" {
		return decision{allowed: false, actual: "none"}
	}
	for _, role := range allowed {
		if actual == role {
			return decision{allowed: true, actual: actual}
		}
	}
	return decision{allowed: false, actual: actual}
}

// RequireSelf denies when the email path parameter differs from the verified
// identity, so buyers and sellers can only read their own order listings.
func RequireSelf(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Params(param) != GetEmail(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "email does not match credential"})
		}
		return c.Next()
	}
}

// GetEmail returns the verified email from the context (after AuthMiddleware).
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

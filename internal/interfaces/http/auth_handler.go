package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/plantnet/marketplace-api/internal/application/auth"
	"github.com/plantnet/marketplace-api/internal/application/dto"
	"github.com/plantnet/marketplace-api/internal/domain"
)

// AuthHandler token issuance, logout and the role workflow endpoints.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	expDays int
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.AuthUseCase, expDays int) *AuthHandler {
	return &AuthHandler{uc: uc, expDays: expDays}
}

// IssueToken godoc
// @Summary      Issue a signed credential
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TokenRequest  true  "identity payload"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /jwt [post]
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var in dto.TokenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.IssueToken(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email is required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// Both variants in one: the token is returned AND set as an HTTP-only
	// cookie for browser clients.
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookie,
		Value:    out.Token,
		Expires:  time.Now().Add(time.Duration(h.expDays) * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: "None",
		Secure:   true,
	})
	return c.JSON(out)
}

// Logout godoc
// @Summary      Clear the auth cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Stateless tokens: nothing is revoked server-side, the cookie is simply
	// expired on the client.
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "None",
		Secure:   true,
	})
	return c.JSON(dto.MessageResponse{Message: "logged out"})
}

// GetRole godoc
// @Summary      Role/status projection for a user
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        email  path  string  true  "user email"
// @Success      200    {object}  dto.RoleResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /users/role/{email} [get]
func (h *AuthHandler) GetRole(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_EMAIL", Message: "email is required"})
	}
	out, err := h.uc.GetRole(c.Context(), email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "user not found"})
	}
	return c.JSON(out)
}

// BecomeSeller godoc
// @Summary      Apply to become a seller (customer -> requested)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        email  path  string  true  "user email"
// @Success      200    {object}  dto.MessageResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      409    {object}  dto.ErrorResponse
// @Router       /users/become-seller/{email} [patch]
func (h *AuthHandler) BecomeSeller(c *fiber.Ctx) error {
	email := c.Params("email")
	err := h.uc.RequestSeller(c.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "user not found"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "only customers can request the seller role"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "seller request submitted"})
}

// UpdateRole godoc
// @Summary      Grant a role (admin action, sets status=verified)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        email  path  string  true  "user email"
// @Param        body   body  dto.UpdateRoleRequest  true  "role to grant"
// @Success      200    {object}  dto.RoleResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /users/role/{email} [patch]
func (h *AuthHandler) UpdateRole(c *fiber.Ctx) error {
	email := c.Params("email")
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.GrantRole(c.Context(), email, in.Role)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "role must be customer, seller or admin"})
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "user not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

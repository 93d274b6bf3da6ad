// Package principal derives the acting user from verified JWT claims. Every
// service call receives the principal explicitly; there is no ambient
// session state.
package principal

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Principal is the authenticated identity attached to a request.
type Principal struct {
	ID    uuid.UUID
	Email string
	Name  string
	Role  string
}

// FromCtx extracts the principal from the JWT the auth middleware verified.
func FromCtx(c *fiber.Ctx) (Principal, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return Principal{}, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Principal{}, errors.New("missing sub claim")
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return Principal{}, err
	}

	p := Principal{ID: id}
	p.Email, _ = claims["email"].(string)
	p.Name, _ = claims["name"].(string)
	p.Role, _ = claims["role"].(string)
	return p, nil
}

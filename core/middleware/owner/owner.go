package owner

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LocalsKey is the Fiber locals key the owner id is stored under.
const LocalsKey = "owner_id"

// Config holds the owner resolution settings.
type Config struct {
	// Header is the request header carrying the owner id.
	Header string
	// Optional lets requests without the header through with no owner set.
	Optional bool
}

// New returns a middleware storing the owner id found in the configured header.
// Unless Optional is set, a missing owner is answered with 401.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Get(cfg.Header))
		if id == "" {
			if cfg.Optional {
				return c.Next()
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing " + cfg.Header + " header",
			})
		}
		c.Locals(LocalsKey, id)
		return c.Next()
	}
}

// FromCtx returns the owner id resolved for the request, or "".
func FromCtx(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsKey).(string)
	return id
}

package middleware

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// Param returns the named path parameter with percent-escapes decoded. A
// literal '+' is kept as is. Malformed escapes are returned as sent.
func Param(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

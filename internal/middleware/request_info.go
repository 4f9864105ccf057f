package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const (
	IPAddressContextKey = "ip_address"
	UserAgentContextKey = "user_agent"
)

// RequestInfo records the caller's real IP (honoring proxy headers) and
// User-Agent so audit writes further down don't reach back into the request.
func RequestInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.Get("CF-Connecting-IP")
		if ip == "" {
			ip = c.Get("X-Forwarded-For")
		}
		if ip == "" {
			ip = c.IP()
		}

		c.Locals(IPAddressContextKey, ip)
		c.Locals(UserAgentContextKey, c.Get("User-Agent"))

		return c.Next()
	}
}

func GetIPAddress(c *fiber.Ctx) string {
	ip, ok := c.Locals(IPAddressContextKey).(string)
	if !ok {
		return c.IP()
	}
	return ip
}

func GetUserAgent(c *fiber.Ctx) string {
	ua, ok := c.Locals(UserAgentContextKey).(string)
	if !ok {
		return ""
	}
	return ua
}

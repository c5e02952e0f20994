package handlers

import (
	"github.com/gofiber/fiber/v2"
	gomponents "maragu.dev/gomponents"
)

// render writes a gomponents tree as the HTML response body.
func render(c *fiber.Ctx, status int, node gomponents.Node) error {
	c.Status(status)
	c.Type("html", "utf-8")
	return node.Render(c.Response().BodyWriter())
}

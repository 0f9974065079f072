package handlers

import (
	"github.com/gofiber/fiber/v2"

	"buildsurge/internal/services"
)

type PageHandler struct {
	Inquiries *services.InquiryService
}

func (h *PageHandler) Home(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{})
}

// Admin renders an informal table of inquiries, newest first.
func (h *PageHandler) Admin(c *fiber.Ctx) error {
	list := h.Inquiries.List()
	return c.Render("admin", fiber.Map{
		"Inquiries": list,
		"Total":     len(list),
	})
}

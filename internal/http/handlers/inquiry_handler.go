package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	applog "buildsurge/internal/log"
	"buildsurge/internal/services"
)

type InquiryHandler struct {
	Inquiries *services.InquiryService
}

type inquiryRequest struct {
	Name     string `json:"name" form:"name"`
	Company  string `json:"company" form:"company"`
	Phone    string `json:"phone" form:"phone"`
	Email    string `json:"email" form:"email"`
	PipeSize string `json:"pipeSize" form:"pipeSize"`
	Quantity string `json:"quantity" form:"quantity"`
	Message  string `json:"message" form:"message"`
}

func (h *InquiryHandler) Submit(c *fiber.Ctx) error {
	var req inquiryRequest
	if err := c.BodyParser(&req); err != nil {
		applog.Info(c, "inquiry.submit.badbody", map[string]any{"err": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Name, phone, and email are required.",
		})
	}

	inq, err := h.Inquiries.Submit(services.SubmitInput{
		Name:     req.Name,
		Company:  req.Company,
		Phone:    req.Phone,
		Email:    req.Email,
		PipeSize: req.PipeSize,
		Quantity: req.Quantity,
		Message:  req.Message,
	})
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			applog.Info(c, "inquiry.submit.reject", map[string]any{"reason": verr.Message})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": verr.Message,
			})
		}
		applog.Error(c, "inquiry.submit.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error. Please try again.",
		})
	}

	applog.Audit(c, "inquiry.submit", map[string]any{"id": inq.ID, "email": inq.Email})
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Inquiry submitted successfully!",
		"inquiryId": inq.ID,
	})
}

func (h *InquiryHandler) List(c *fiber.Ctx) error {
	list := h.Inquiries.List()
	return c.JSON(fiber.Map{
		"success":   true,
		"total":     len(list),
		"inquiries": list,
	})
}

func (h *InquiryHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Inquiry not found.",
		})
	}
	if err := h.Inquiries.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Inquiry not found.",
			})
		}
		applog.Error(c, "inquiry.delete.fail", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error. Please try again.",
		})
	}
	applog.Audit(c, "inquiry.delete", map[string]any{"id": id})
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Inquiry deleted.",
	})
}

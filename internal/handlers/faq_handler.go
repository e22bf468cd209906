package handlers

import (
	"errors"

	"github.com/ecoride/support-backend/internal/dto"
	"github.com/ecoride/support-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type FAQHandler struct {
	faqService *services.FAQService
}

func NewFAQHandler(faqService *services.FAQService) *FAQHandler {
	return &FAQHandler{faqService: faqService}
}

// ListActive is the customer-facing list: disabled entries never appear.
func (h *FAQHandler) ListActive(c *fiber.Ctx) error {
	faqs, err := h.faqService.ListActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load FAQs",
		})
	}
	return c.JSON(fiber.Map{"faqs": faqs})
}

func (h *FAQHandler) ListAll(c *fiber.Ctx) error {
	faqs, err := h.faqService.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load FAQs",
		})
	}
	return c.JSON(fiber.Map{"faqs": faqs})
}

func (h *FAQHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateFAQRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Question and answer are required",
		})
	}

	faq, err := h.faqService.Create(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create FAQ",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(faq)
}

func (h *FAQHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid FAQ ID",
		})
	}

	var req dto.UpdateFAQRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Question and answer are required",
		})
	}

	faq, err := h.faqService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrFAQNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "FAQ not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update FAQ",
		})
	}
	return c.JSON(faq)
}

func (h *FAQHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid FAQ ID",
		})
	}

	if err := h.faqService.Delete(id); err != nil {
		if errors.Is(err, services.ErrFAQNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "FAQ not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete FAQ",
		})
	}
	return c.JSON(fiber.Map{"message": "FAQ deleted"})
}

package handlers

import (
	"errors"

	"github.com/ecoride/support-backend/internal/dto"
	"github.com/ecoride/support-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ScooterHandler struct {
	scooterService *services.ScooterService
}

func NewScooterHandler(scooterService *services.ScooterService) *ScooterHandler {
	return &ScooterHandler{scooterService: scooterService}
}

func (h *ScooterHandler) ListAvailable(c *fiber.Ctx) error {
	scooters, err := h.scooterService.ListAvailable()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load scooters",
		})
	}
	return c.JSON(fiber.Map{"scooters": scooters})
}

func (h *ScooterHandler) AdminList(c *fiber.Ctx) error {
	scooters, err := h.scooterService.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load scooters",
		})
	}
	return c.JSON(fiber.Map{"scooters": scooters})
}

func (h *ScooterHandler) AdminCreate(c *fiber.Ctx) error {
	var req dto.CreateScooterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Name, model and price are required",
		})
	}

	scooter, err := h.scooterService.Create(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create scooter",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(scooter)
}

func (h *ScooterHandler) AdminUpdate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid scooter ID",
		})
	}

	var req dto.UpdateScooterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid scooter fields",
		})
	}

	scooter, err := h.scooterService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrScooterNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Scooter not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update scooter",
		})
	}
	return c.JSON(scooter)
}

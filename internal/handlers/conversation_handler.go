package handlers

import (
	"errors"

	"github.com/ecoride/support-backend/internal/dto"
	"github.com/ecoride/support-backend/internal/identity"
	"github.com/ecoride/support-backend/internal/models"
	"github.com/ecoride/support-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ConversationHandler struct {
	conversationService *services.ConversationService
}

func NewConversationHandler(conversationService *services.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversationService: conversationService}
}

// --- Customer handlers ---

func (h *ConversationHandler) List(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var resolved *bool
	if q := c.Query("resolved"); q != "" {
		v := q == "true"
		resolved = &v
	}

	convs, err := h.conversationService.ListForUser(userID, resolved)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load conversations",
		})
	}
	return c.JSON(fiber.Map{"conversations": convs})
}

func (h *ConversationHandler) Create(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Title is required",
		})
	}

	conv, err := h.conversationService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrFAQNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "FAQ not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to start conversation",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(conv)
}

func (h *ConversationHandler) GetMessages(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	conv, status, errResp := h.ownedConversation(c, userID)
	if errResp != nil {
		return c.Status(status).JSON(*errResp)
	}

	msgs, err := h.conversationService.Messages(conv.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load messages",
		})
	}
	return c.JSON(fiber.Map{"messages": msgs})
}

func (h *ConversationHandler) SendMessage(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	conv, status, errResp := h.ownedConversation(c, userID)
	if errResp != nil {
		return c.Status(status).JSON(*errResp)
	}

	return h.appendMessage(c, conv.ID, models.SenderCustomer)
}

func (h *ConversationHandler) Resolve(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	conv, status, errResp := h.ownedConversation(c, userID)
	if errResp != nil {
		return c.Status(status).JSON(*errResp)
	}

	resolved, err := h.conversationService.Resolve(conv.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to resolve conversation",
		})
	}
	return c.JSON(resolved)
}

// --- Admin handlers ---

func (h *ConversationHandler) AdminList(c *fiber.Ctx) error {
	unresolvedOnly := c.Query("unresolved") == "true"

	convs, err := h.conversationService.ListForAdmin(unresolvedOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load conversations",
		})
	}
	return c.JSON(fiber.Map{"conversations": convs})
}

func (h *ConversationHandler) AdminGetMessages(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid conversation ID",
		})
	}

	msgs, err := h.conversationService.Messages(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load messages",
		})
	}
	return c.JSON(fiber.Map{"messages": msgs})
}

func (h *ConversationHandler) AdminSendMessage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid conversation ID",
		})
	}

	return h.appendMessage(c, id, models.SenderAdmin)
}

func (h *ConversationHandler) AdminResolve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid conversation ID",
		})
	}

	resolved, err := h.conversationService.Resolve(id)
	if err != nil {
		if errors.Is(err, services.ErrConversationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Conversation not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to resolve conversation",
		})
	}
	return c.JSON(resolved)
}

// --- shared ---

func (h *ConversationHandler) appendMessage(c *fiber.Ctx, conversationID uuid.UUID, senderType string) error {
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Message is required",
		})
	}

	msg, err := h.conversationService.SendMessage(conversationID, senderType, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrConversationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Conversation not found",
			})
		case errors.Is(err, services.ErrConversationResolved):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "Conversation is resolved",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to send message",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

// ownedConversation parses :id and checks the conversation belongs to userID.
func (h *ConversationHandler) ownedConversation(c *fiber.Ctx, userID uuid.UUID) (*models.SupportConversation, int, *dto.ErrorResponse) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.StatusBadRequest, &dto.ErrorResponse{Error: true, Message: "Invalid conversation ID"}
	}

	conv, err := h.conversationService.Get(id)
	if err != nil {
		return nil, fiber.StatusNotFound, &dto.ErrorResponse{Error: true, Message: "Conversation not found"}
	}
	if conv.UserID != userID {
		return nil, fiber.StatusForbidden, &dto.ErrorResponse{Error: true, Message: "Forbidden"}
	}
	return conv, 0, nil
}

package services

import (
	"testing"

	"github.com/ecoride/support-backend/internal/dto"
	"github.com/ecoride/support-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateConversationWithFAQSeed(t *testing.T) {
	db := newTestDB(t)
	svc := NewConversationService(db)
	faqs := NewFAQService(db)

	faq, err := faqs.Create(&dto.CreateFAQRequest{
		Question: "How do I reset my scooter?",
		Answer:   "Hold the power button for 10 seconds.",
	})
	require.NoError(t, err)

	userID := uuid.New()
	conv, err := svc.Create(userID, &dto.CreateConversationRequest{
		Title:         "How do I reset my scooter?",
		FAQQuestionID: &faq.ID,
	})
	require.NoError(t, err)

	// The seed message carries the FAQ answer as the admin sender.
	msgs, err := svc.Messages(conv.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, models.SenderAdmin, msgs[0].SenderType)
	assert.Equal(t, "Hold the power button for 10 seconds.", msgs[0].Message)

	assert.Equal(t, "Hold the power button for 10 seconds.", conv.LastMessage)
	require.NotNil(t, conv.LastMessageAt)

	// Listing for the owner includes it immediately.
	listed, err := svc.ListForUser(userID, nil)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, conv.ID, listed[0].ID)
}

func TestCreateConversationWithFreeTextSeed(t *testing.T) {
	db := newTestDB(t)
	svc := NewConversationService(db)

	userID := uuid.New()
	conv, err := svc.Create(userID, &dto.CreateConversationRequest{
		Title:   "Charger issue",
		Message: "My charger gets very hot",
	})
	require.NoError(t, err)

	msgs, err := svc.Messages(conv.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, models.SenderCustomer, msgs[0].SenderType)
	assert.Equal(t, "My charger gets very hot", msgs[0].Message)
}

func TestCreateConversationWithoutSeed(t *testing.T) {
	db := newTestDB(t)
	svc := NewConversationService(db)

	conv, err := svc.Create(uuid.New(), &dto.CreateConversationRequest{
		Title: "Order Support - SCT-1",
	})
	require.NoError(t, err)

	msgs, err := svc.Messages(conv.ID)
	require.NoError(t, err)
	assert.Empty(t, msgs)
	assert.Empty(t, conv.LastMessage)
	assert.Nil(t, conv.LastMessageAt)
	assert.Equal(t, models.ConversationStatusOpen, conv.Status)
	assert.False(t, conv.IsResolved)
}

func TestSendMessageUpdatesSummary(t *testing.T) {
	db := newTestDB(t)
	svc := NewConversationService(db)

	userID := uuid.New()
	conv, err := svc.Create(userID, &dto.CreateConversationRequest{
		Title:   "Battery issue",
		Message: "Battery drains overnight",
	})
	require.NoError(t, err)

	_, err = svc.SendMessage(conv.ID, models.SenderCustomer, &dto.SendMessageRequest{
		Message: "still draining",
	})
	require.NoError(t, err)

	reloaded, err := svc.Get(conv.ID)
	require.NoError(t, err)
	assert.Equal(t, "still draining", reloaded.LastMessage)
	require.NotNil(t, reloaded.LastMessageAt)

	msgs, err := svc.Messages(conv.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "still draining", msgs[1].Message)
}

func TestSendMessageWithAttachment(t *testing.T) {
	db := newTestDB(t)
	svc := NewConversationService(db)

	conv, err := svc.Create(uuid.New(), &dto.CreateConversationRequest{Title: "Broken deck"})
	require.NoError(t, err)

	msg, err := svc.SendMessage(conv.ID, models.SenderCustomer, &dto.SendMessageRequest{
		Message:  "photo attached",
		FileURL:  "http://localhost:8080/uploads/u/1.png",
		FileName: "deck.png",
		FileType: "image/png",
		FileSize: 2048,
	})
	require.NoError(t, err)
	assert.Equal(t, "deck.png", msg.FileName)
	assert.Equal(t, int64(2048), msg.FileSize)
}

func TestResolveIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewConversationService(db)

	conv, err := svc.Create(uuid.New(), &dto.CreateConversationRequest{Title: "Wobbly wheel"})
	require.NoError(t, err)

	first, err := svc.Resolve(conv.ID)
	require.NoError(t, err)
	assert.True(t, first.IsResolved)
	assert.Equal(t, models.ConversationStatusResolved, first.Status)

	second, err := svc.Resolve(conv.ID)
	require.NoError(t, err)
	assert.True(t, second.IsResolved)
	assert.Equal(t, models.ConversationStatusResolved, second.Status)
}

func TestResolvedConversationRejectsMessages(t *testing.T) {
	db := newTestDB(t)
	svc := NewConversationService(db)

	conv, err := svc.Create(uuid.New(), &dto.CreateConversationRequest{Title: "Headlight"})
	require.NoError(t, err)

	_, err = svc.Resolve(conv.ID)
	require.NoError(t, err)

	_, err = svc.SendMessage(conv.ID, models.SenderAdmin, &dto.SendMessageRequest{Message: "closing note"})
	assert.ErrorIs(t, err, ErrConversationResolved)
}

func TestListForUserResolvedFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewConversationService(db)

	userID := uuid.New()
	open, err := svc.Create(userID, &dto.CreateConversationRequest{Title: "Open one"})
	require.NoError(t, err)
	done, err := svc.Create(userID, &dto.CreateConversationRequest{Title: "Done one"})
	require.NoError(t, err)
	_, err = svc.Resolve(done.ID)
	require.NoError(t, err)

	unresolved := false
	convs, err := svc.ListForUser(userID, &unresolved)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, open.ID, convs[0].ID)

	all, err := svc.ListForUser(userID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListForAdminJoinsCustomerAndOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewConversationService(db)
	orders := NewOrderService(db)

	userID := uuid.New()
	require.NoError(t, db.Create(&models.Profile{
		UserID:       userID,
		FullName:     "Asha Verma",
		MobileNumber: "+919876543210",
		Role:         models.RoleCustomer,
	}).Error)

	order, err := orders.Create(userID, &dto.CreateOrderRequest{
		Items:           []dto.OrderItemInput{{Model: "Thunder X1 Pro", Quantity: 1}},
		DeliveryAddress: "14 MG Road, Pune",
	})
	require.NoError(t, err)

	_, err = svc.Create(userID, &dto.CreateConversationRequest{
		Title:   "Order Support - " + order.OrderNumber,
		OrderID: &order.ID,
	})
	require.NoError(t, err)

	listed, err := svc.ListForAdmin(false)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	require.NotNil(t, listed[0].Customer)
	assert.Equal(t, "Asha Verma", listed[0].Customer.FullName)
	assert.Equal(t, "+919876543210", listed[0].Customer.MobileNumber)

	require.NotNil(t, listed[0].Order)
	assert.Equal(t, order.OrderNumber, listed[0].Order.OrderNumber)
	assert.Equal(t, models.OrderStatusPending, listed[0].Order.Status)
}

func TestListForAdminUnresolvedFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewConversationService(db)

	userID := uuid.New()
	_, err := svc.Create(userID, &dto.CreateConversationRequest{Title: "Still open"})
	require.NoError(t, err)
	done, err := svc.Create(userID, &dto.CreateConversationRequest{Title: "Closed"})
	require.NoError(t, err)
	_, err = svc.Resolve(done.ID)
	require.NoError(t, err)

	listed, err := svc.ListForAdmin(true)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Still open", listed[0].Title)
}

func TestCreateConversationUnknownFAQ(t *testing.T) {
	db := newTestDB(t)
	svc := NewConversationService(db)

	missing := uuid.New()
	_, err := svc.Create(uuid.New(), &dto.CreateConversationRequest{
		Title:         "From FAQ",
		FAQQuestionID: &missing,
	})
	assert.ErrorIs(t, err, ErrFAQNotFound)
}

package services

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ecoride/support-backend/internal/dto"
	"github.com/ecoride/support-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	userID := uuid.New()
	order, err := svc.Create(userID, &dto.CreateOrderRequest{
		Items:           []dto.OrderItemInput{{Model: "Urban Rider Elite", Quantity: 1}},
		DeliveryAddress: "221B Residency Road, Bengaluru",
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, float64(0), order.TotalAmount)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "SCT-"))

	var items []dto.OrderItemInput
	require.NoError(t, json.Unmarshal(order.Items, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Urban Rider Elite", items[0].Model)
}

func TestOrderNumberUniqueness(t *testing.T) {
	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		n, err := GenerateOrderNumber()
		require.NoError(t, err)
		require.False(t, seen[n], "duplicate order number %s", n)
		seen[n] = true
	}
}

func TestUpdateStatusVisibleToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	userID := uuid.New()
	order, err := svc.Create(userID, &dto.CreateOrderRequest{
		Items:           []dto.OrderItemInput{{Model: "EcoFlash 600W", Quantity: 1}},
		DeliveryAddress: "7 Park Street, Kolkata",
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	_, err = svc.UpdateStatus(order.ID, models.OrderStatusShipped)
	require.NoError(t, err)

	owned, err := svc.ListForUser(userID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, models.OrderStatusShipped, owned[0].Status)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	order, err := svc.Create(uuid.New(), &dto.CreateOrderRequest{
		Items:           []dto.OrderItemInput{{Model: "Speedster Max", Quantity: 1}},
		DeliveryAddress: "1 Marine Drive, Mumbai",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(order.ID, "teleported")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}

func TestUpdateStatusAllowsAnyValidTransition(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	order, err := svc.Create(uuid.New(), &dto.CreateOrderRequest{
		Items:           []dto.OrderItemInput{{Model: "City Cruiser Pro", Quantity: 2}},
		DeliveryAddress: "5 Anna Salai, Chennai",
	})
	require.NoError(t, err)

	// No transition table: delivered straight back to pending is accepted.
	_, err = svc.UpdateStatus(order.ID, models.OrderStatusDelivered)
	require.NoError(t, err)
	updated, err := svc.UpdateStatus(order.ID, models.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, updated.Status)
}

func TestUpdateAmount(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	order, err := svc.Create(uuid.New(), &dto.CreateOrderRequest{
		Items:           []dto.OrderItemInput{{Model: "Thunder X1 Pro", Quantity: 1}},
		DeliveryAddress: "9 Sector 17, Chandigarh",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateAmount(order.ID, 64999)
	require.NoError(t, err)
	assert.Equal(t, float64(64999), updated.TotalAmount)
}

func TestListForAdminJoinsProfiles(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	userID := uuid.New()
	require.NoError(t, db.Create(&models.Profile{
		UserID:       userID,
		FullName:     "Rohan Iyer",
		MobileNumber: "+919812345678",
		Role:         models.RoleCustomer,
	}).Error)

	_, err := svc.Create(userID, &dto.CreateOrderRequest{
		Items:           []dto.OrderItemInput{{Model: "Lightning Storm 2024", Quantity: 1}},
		DeliveryAddress: "3 Banjara Hills, Hyderabad",
	})
	require.NoError(t, err)

	listed, err := svc.ListForAdmin()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].Customer)
	assert.Equal(t, "Rohan Iyer", listed[0].Customer.FullName)
}

func TestListForUserScopesToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	owner := uuid.New()
	other := uuid.New()
	_, err := svc.Create(owner, &dto.CreateOrderRequest{
		Items:           []dto.OrderItemInput{{Model: "Urban Rider Elite", Quantity: 1}},
		DeliveryAddress: "12 Civil Lines, Jaipur",
	})
	require.NoError(t, err)

	orders, err := svc.ListForUser(other)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"agro-marketplace/internal/data/entity"
	"agro-marketplace/internal/dto/request"
	"agro-marketplace/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestCheckoutService_SingleItem(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewCheckoutService(repo, zap.NewNop())
	buyer := primitive.NewObjectID()

	resp, err := svc.Checkout(context.Background(), &request.CheckoutRequest{
		Items:   []request.CheckoutItem{{Name: "Wheat", Quantity: 3, Price: 10}},
		BuyerID: buyer.Hex(),
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "Order placed successfully", resp.Message)
	require.Len(t, resp.NotificationIDs, 1)
	assert.Equal(t, 1, repo.calls)

	require.Len(t, repo.inserted, 1)
	n := repo.inserted[0]
	assert.Equal(t, 30.0, n.TotalPrice)
	assert.Equal(t, entity.NotificationPending, n.Status)
	assert.Equal(t, "Wheat", n.CropName)
	assert.Equal(t, 3, n.Quantity)
	assert.Equal(t, buyer, n.BuyerID)
	assert.Equal(t, "", n.ImageID)
	assert.Equal(t, "", n.ToUserID)
	assert.WithinDuration(t, time.Now(), n.Timestamp, 5*time.Second)
	assert.Equal(t, n.ID.Hex(), resp.NotificationIDs[0])
}

func TestCheckoutService_ManyItemsOneInsert(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewCheckoutService(repo, zap.NewNop())

	resp, err := svc.Checkout(context.Background(), &request.CheckoutRequest{
		Items: []request.CheckoutItem{
			{Name: "Maize", Quantity: 2, Price: 0.1, ImageID: "img-1", ToUserID: "seller-1"},
			{Name: "Beans", Quantity: 5, Price: 4.25},
		},
		BuyerID: primitive.NewObjectID().Hex(),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
	require.Len(t, resp.NotificationIDs, 2)
	assert.Equal(t, 0.2, repo.inserted[0].TotalPrice)
	assert.Equal(t, "img-1", repo.inserted[0].ImageID)
	assert.Equal(t, "seller-1", repo.inserted[0].ToUserID)
	assert.Equal(t, 21.25, repo.inserted[1].TotalPrice)
	assert.Equal(t, repo.inserted[1].ID.Hex(), resp.NotificationIDs[1])
}

func TestCheckoutService_Validation(t *testing.T) {
	buyer := primitive.NewObjectID().Hex()
	wheat := []request.CheckoutItem{{Name: "Wheat", Quantity: 1, Price: 10}}

	tests := []struct {
		name string
		req  *request.CheckoutRequest
	}{
		{"no items", &request.CheckoutRequest{BuyerID: buyer}},
		{"no buyer", &request.CheckoutRequest{Items: wheat}},
		{"bad buyer", &request.CheckoutRequest{Items: wheat, BuyerID: "buyer-1"}},
		{"item without name", &request.CheckoutRequest{Items: []request.CheckoutItem{{Quantity: 1, Price: 1}}, BuyerID: buyer}},
		{"zero quantity", &request.CheckoutRequest{Items: []request.CheckoutItem{{Name: "Wheat", Price: 1}}, BuyerID: buyer}},
		{"negative price", &request.CheckoutRequest{Items: []request.CheckoutItem{{Name: "Wheat", Quantity: 1, Price: -1}}, BuyerID: buyer}},
		{"markup in name", &request.CheckoutRequest{Items: []request.CheckoutItem{{Name: "Maize <grade A>", Quantity: 1, Price: 1}}, BuyerID: buyer}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeNotificationRepo{}
			svc := NewCheckoutService(repo, zap.NewNop())

			_, err := svc.Checkout(context.Background(), tt.req)
			assert.True(t, utils.IsKind(err, utils.KindValidation), "got %v", err)
			assert.Zero(t, repo.calls)
		})
	}
}

func TestCheckoutService_InsertFailure(t *testing.T) {
	repo := &fakeNotificationRepo{err: errors.New("bulk write exception")}
	svc := NewCheckoutService(repo, zap.NewNop())

	_, err := svc.Checkout(context.Background(), &request.CheckoutRequest{
		Items:   []request.CheckoutItem{{Name: "Wheat", Quantity: 3, Price: 10}},
		BuyerID: primitive.NewObjectID().Hex(),
	})
	assert.True(t, utils.IsKind(err, utils.KindInternal))
}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, 30.0, LineTotal(10, 3))
	assert.Equal(t, 0.3, LineTotal(0.1, 3))
	assert.Equal(t, 0.0, LineTotal(19.99, 0))
}

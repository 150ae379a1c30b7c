package usecase

import (
	"context"
	"time"

	"agro-marketplace/internal/data/entity"
	"agro-marketplace/internal/data/repository"
	"agro-marketplace/internal/dto/request"
	"agro-marketplace/internal/dto/response"
	"agro-marketplace/pkg/utils"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type CheckoutService interface {
	Checkout(ctx context.Context, req *request.CheckoutRequest) (*response.CheckoutResponse, error)
}

type checkoutService struct {
	notificationRepo repository.NotificationRepository
	log              *zap.Logger
	now              func() time.Time
}

func NewCheckoutService(notificationRepo repository.NotificationRepository, log *zap.Logger) CheckoutService {
	return &checkoutService{
		notificationRepo: notificationRepo,
		log:              log,
		now:              time.Now,
	}
}

func (cs *checkoutService) Checkout(ctx context.Context, req *request.CheckoutRequest) (*response.CheckoutResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		cs.log.Warn("Checkout validation failed", zap.Any("errors", errs))
		return nil, utils.ErrValidation("Missing required fields", errs)
	}

	buyerID, err := primitive.ObjectIDFromHex(req.BuyerID)
	if err != nil {
		return nil, utils.ErrValidation("Invalid buyer ID", map[string]string{"BuyerID": "Must be a valid ObjectId"})
	}

	timestamp := cs.now().UTC()
	notifications := make([]*entity.Notification, 0, len(req.Items))
	for _, item := range req.Items {
		notifications = append(notifications, &entity.Notification{
			ImageID:    item.ImageID,
			ToUserID:   item.ToUserID,
			CropName:   item.Name,
			Quantity:   item.Quantity,
			TotalPrice: LineTotal(item.Price, item.Quantity),
			BuyerID:    buyerID,
			Timestamp:  timestamp,
			Status:     entity.NotificationPending,
		})
	}

	ids, err := cs.notificationRepo.CreateMany(ctx, notifications)
	if err != nil {
		return nil, utils.ErrInternal("Failed to place order", err)
	}

	hexIDs := make([]string, len(ids))
	for i, id := range ids {
		hexIDs[i] = id.Hex()
	}

	cs.log.Info("Order placed",
		zap.String("buyer_id", req.BuyerID),
		zap.Int("items", len(notifications)))

	return &response.CheckoutResponse{
		Success:         true,
		Message:         "Order placed successfully",
		NotificationIDs: hexIDs,
	}, nil
}

// LineTotal is unit price × quantity computed in decimal
func LineTotal(price float64, quantity int) float64 {
	total, _ := decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity))).Float64()
	return total
}

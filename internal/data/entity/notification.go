package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
)

// Notification is one line item of a placed order awaiting seller action
type Notification struct {
	ID         primitive.ObjectID `bson:"_id"`
	ImageID    string             `bson:"image_id"`
	ToUserID   string             `bson:"toUserId"`
	CropName   string             `bson:"cropName"`
	Quantity   int                `bson:"quantity"`
	TotalPrice float64            `bson:"totalPrice"`
	BuyerID    primitive.ObjectID `bson:"buyerId"`
	Timestamp  time.Time          `bson:"timestamp"`
	Status     NotificationStatus `bson:"status"`
}

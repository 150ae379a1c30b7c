package repository

import (
	"context"
	"fmt"

	"agro-marketplace/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type NotificationRepository interface {
	CreateMany(ctx context.Context, notifications []*entity.Notification) ([]primitive.ObjectID, error)
}

type notificationRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewNotificationRepository(db *mongo.Database, log *zap.Logger) NotificationRepository {
	return &notificationRepository{
		coll: db.Collection(notificationsCollection),
		log:  log,
	}
}

// CreateMany inserts all notifications in one ordered batch. IDs are assigned
// here so they come back in input order.
func (nr *notificationRepository) CreateMany(ctx context.Context, notifications []*entity.Notification) ([]primitive.ObjectID, error) {
	docs := make([]interface{}, len(notifications))
	ids := make([]primitive.ObjectID, len(notifications))
	for i, n := range notifications {
		if n.ID.IsZero() {
			n.ID = primitive.NewObjectID()
		}
		ids[i] = n.ID
		docs[i] = n
	}

	if _, err := nr.coll.InsertMany(ctx, docs); err != nil {
		nr.log.Error("Failed to insert notifications",
			zap.Error(err),
			zap.Int("count", len(docs)),
		)
		return nil, fmt.Errorf("insert %d notifications: %w", len(docs), err)
	}

	return ids, nil
}

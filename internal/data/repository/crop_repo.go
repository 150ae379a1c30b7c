package repository

import (
	"context"
	"fmt"

	"agro-marketplace/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type CropRepository interface {
	FindAll(ctx context.Context) ([]*entity.Crop, error)
}

type cropRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewCropRepository(db *mongo.Database, log *zap.Logger) CropRepository {
	return &cropRepository{
		coll: db.Collection(cropsCollection),
		log:  log,
	}
}

func (cr *cropRepository) FindAll(ctx context.Context) ([]*entity.Crop, error) {
	cursor, err := cr.coll.Find(ctx, bson.M{})
	if err != nil {
		cr.log.Error("Failed to query crops", zap.Error(err))
		return nil, fmt.Errorf("find crops: %w", err)
	}
	defer cursor.Close(ctx)

	crops := make([]*entity.Crop, 0)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			cr.log.Error("Failed to decode crop", zap.Error(err))
			return nil, fmt.Errorf("decode crop: %w", err)
		}
		crops = append(crops, cropFromDocument(doc))
	}

	if err := cursor.Err(); err != nil {
		cr.log.Error("Crop cursor error", zap.Error(err))
		return nil, fmt.Errorf("iterate crops: %w", err)
	}

	return crops, nil
}

func cropFromDocument(doc bson.M) *entity.Crop {
	return &entity.Crop{
		ID:        stringifyID(doc["_id"]),
		Name:      stringField(doc, "name"),
		Price:     numberField(doc, "price"),
		Quantity:  numberField(doc, "quantity"),
		ImageID:   stringifyID(doc["image_id"]),
		UserID:    stringifyID(doc["user_id"]),
		CreatedAt: timeField(doc, "created_at"),
	}
}

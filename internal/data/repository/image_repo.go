package repository

import (
	"context"
	"errors"
	"fmt"

	"agro-marketplace/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type ImageRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Image, error)
}

type imageRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewImageRepository(db *mongo.Database, log *zap.Logger) ImageRepository {
	return &imageRepository{
		coll: db.Collection(imagesCollection),
		log:  log,
	}
}

// FindByID returns nil, nil when the image does not exist
func (ir *imageRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Image, error) {
	var doc bson.M
	err := ir.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		ir.log.Error("Failed to find image",
			zap.Error(err),
			zap.String("image_id", id.Hex()),
		)
		return nil, fmt.Errorf("find image %s: %w", id.Hex(), err)
	}

	return imageFromDocument(doc), nil
}

func imageFromDocument(doc bson.M) *entity.Image {
	img := &entity.Image{
		ID:          stringifyID(doc["_id"]),
		ContentType: stringField(doc, "content_type"),
	}

	if raw, ok := doc["image_data"]; ok && raw != nil {
		img.HasData = true
		img.Data = bytesOf(raw)
	}

	// legacy documents store base64 either as a string or as raw bytes
	if raw, ok := doc["base64"]; ok && raw != nil {
		img.HasEncoded = true
		switch v := raw.(type) {
		case string:
			img.Encoded = v
		default:
			img.Encoded = string(bytesOf(v))
		}
	}

	return img
}

func bytesOf(v any) []byte {
	switch b := v.(type) {
	case primitive.Binary:
		return b.Data
	case []byte:
		return b
	case string:
		return []byte(b)
	default:
		return nil
	}
}

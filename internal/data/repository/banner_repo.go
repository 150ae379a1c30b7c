package repository

import (
	"context"
	"fmt"

	"agro-marketplace/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type BannerRepository interface {
	FindActive(ctx context.Context) ([]*entity.Banner, error)
}

type bannerRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewBannerRepository(db *mongo.Database, log *zap.Logger) BannerRepository {
	return &bannerRepository{
		coll: db.Collection(bannersCollection),
		log:  log,
	}
}

func activeBannerFilter() bson.M {
	return bson.M{"is_active": true}
}

// FindActive returns banners flagged active in natural order
func (br *bannerRepository) FindActive(ctx context.Context) ([]*entity.Banner, error) {
	cursor, err := br.coll.Find(ctx, activeBannerFilter())
	if err != nil {
		br.log.Error("Failed to query banners", zap.Error(err))
		return nil, fmt.Errorf("find active banners: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		br.log.Error("Failed to decode banners", zap.Error(err))
		return nil, fmt.Errorf("decode banners: %w", err)
	}

	banners := make([]*entity.Banner, 0, len(docs))
	for _, doc := range docs {
		banners = append(banners, bannerFromDocument(doc))
	}

	return banners, nil
}

func bannerFromDocument(doc bson.M) *entity.Banner {
	return &entity.Banner{
		ID:        stringifyID(doc["_id"]),
		Title:     stringField(doc, "title"),
		ImageURL:  stringField(doc, "image_url"),
		TargetURL: stringField(doc, "target_url"),
		IsActive:  boolField(doc, "is_active"),
	}
}

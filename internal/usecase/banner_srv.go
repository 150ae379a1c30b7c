package usecase

import (
	"context"

	"agro-marketplace/internal/data/repository"
	"agro-marketplace/internal/dto/response"
	"agro-marketplace/pkg/utils"

	"go.uber.org/zap"
)

type BannerService interface {
	ListActive(ctx context.Context) ([]response.BannerResponse, error)
}

type bannerService struct {
	bannerRepo repository.BannerRepository
	log        *zap.Logger
}

func NewBannerService(bannerRepo repository.BannerRepository, log *zap.Logger) BannerService {
	return &bannerService{
		bannerRepo: bannerRepo,
		log:        log,
	}
}

func (bs *bannerService) ListActive(ctx context.Context) ([]response.BannerResponse, error) {
	banners, err := bs.bannerRepo.FindActive(ctx)
	if err != nil {
		return nil, utils.ErrInternal("Failed to fetch banners", err)
	}

	result := make([]response.BannerResponse, 0, len(banners))
	for _, b := range banners {
		// the query filters on is_active already; skip anything that slipped through
		if !b.IsActive {
			continue
		}
		result = append(result, response.BannerToResponse(b))
	}

	bs.log.Debug("Banners retrieved", zap.Int("count", len(result)))
	return result, nil
}

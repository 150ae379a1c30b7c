package usecase

import (
	"context"

	"agro-marketplace/internal/data/repository"
	"agro-marketplace/internal/dto/response"
	"agro-marketplace/pkg/utils"

	"go.uber.org/zap"
)

type ProductService interface {
	List(ctx context.Context) (*response.ProductListResponse, error)
}

type productService struct {
	cropRepo repository.CropRepository
	log      *zap.Logger
}

func NewProductService(cropRepo repository.CropRepository, log *zap.Logger) ProductService {
	return &productService{
		cropRepo: cropRepo,
		log:      log,
	}
}

func (ps *productService) List(ctx context.Context) (*response.ProductListResponse, error) {
	crops, err := ps.cropRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrInternal("Failed to fetch products", err)
	}

	data := make([]response.ProductResponse, 0, len(crops))
	for _, c := range crops {
		data = append(data, response.CropToResponse(c))
	}

	ps.log.Debug("Products retrieved", zap.Int("count", len(data)))

	return &response.ProductListResponse{
		Success: true,
		Data:    data,
		Message: "Products fetched successfully",
	}, nil
}

package services

import (
	"context"
	"fmt"

	"beautytime/internal/common"
	"beautytime/internal/models"
	"beautytime/internal/repository"

	"github.com/rs/zerolog"
)

const maxShortDescriptionLen = 50

type ProductService struct {
	repo   repository.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo repository.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ProductService) List(ctx context.Context, filter models.ProductFilter, page models.PageRequest) ([]models.Product, int64, error) {
	return s.repo.List(ctx, filter, page)
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, req *models.CreateProductRequest, imageURL string) (*models.Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrInvalidInput)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", common.ErrInvalidInput)
	}
	if len(req.ShortDescription) > maxShortDescriptionLen {
		return nil, fmt.Errorf("%w: short description must be at most %d characters", common.ErrInvalidInput, maxShortDescriptionLen)
	}

	image := req.Image
	if imageURL != "" {
		image = imageURL
	}

	product, err := s.repo.Insert(ctx, &models.Product{
		Name:             req.Name,
		Price:            req.Price,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Image:            image,
		Category:         req.Category,
		Featured:         req.Featured,
		InStock:          req.InStock,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Error creating product")
		return nil, err
	}

	s.logger.Info().Str("product_id", product.ID.Hex()).Str("name", product.Name).Msg("Product created")
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, req *models.UpdateProductRequest, uploadedURL string) (*models.Product, error) {
	if req.Price != nil && *req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", common.ErrInvalidInput)
	}
	if req.ShortDescription != nil && len(*req.ShortDescription) > maxShortDescriptionLen {
		return nil, fmt.Errorf("%w: short description must be at most %d characters", common.ErrInvalidInput, maxShortDescriptionLen)
	}

	// A freshly uploaded file wins; otherwise an explicit external URL is
	// accepted; otherwise the stored image is left alone.
	imageURL := uploadedURL
	if imageURL == "" && req.ImageURL != nil {
		imageURL = *req.ImageURL
	}

	product, err := s.repo.Update(ctx, id, req, imageURL)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Msg("Product updated")
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("Product deleted")
	return nil
}

func (s *ProductService) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 6
	}
	return s.repo.Featured(ctx, limit)
}

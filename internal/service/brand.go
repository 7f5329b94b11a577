package service

import (
	"context"
	"strings"

	"timeless-backend/internal/domain"
	"timeless-backend/internal/repository"
)

type brandService struct {
	brandRepo repository.BrandRepository
}

func NewBrandService(brandRepo repository.BrandRepository) BrandService {
	return &brandService{brandRepo: brandRepo}
}

func (s *brandService) Create(ctx context.Context, input BrandInput) (*domain.Brand, error) {
	name := strings.TrimSpace(input.BrandName)
	if name == "" {
		return nil, domain.NewValidation("brand name is required")
	}
	brand := &domain.Brand{BrandName: name}
	if err := s.brandRepo.Create(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *brandService) Get(ctx context.Context, id int32) (*domain.Brand, error) {
	return s.brandRepo.GetByID(ctx, id)
}

func (s *brandService) List(ctx context.Context) ([]domain.Brand, error) {
	return s.brandRepo.List(ctx)
}

func (s *brandService) Update(ctx context.Context, id int32, input BrandInput) (*domain.Brand, error) {
	brand, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(input.BrandName); name != "" {
		brand.BrandName = name
	}
	if err := s.brandRepo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *brandService) Delete(ctx context.Context, id int32) error {
	return s.brandRepo.Delete(ctx, id)
}

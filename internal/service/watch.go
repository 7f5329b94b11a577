package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"timeless-backend/internal/domain"
	"timeless-backend/internal/repository"
)

var titleCaser = cases.Title(language.English)

// NormalizeCondition title-cases a condition value so that "new", "NEW"
// and "New" all persist identically. Normalization happens here, at the
// top of the write path, never as a persistence hook.
func NormalizeCondition(c string) domain.WatchCondition {
	return domain.WatchCondition(titleCaser.String(strings.ToLower(strings.TrimSpace(c))))
}

type watchService struct {
	watchRepo repository.WatchRepository
	brandRepo repository.BrandRepository
}

func NewWatchService(watchRepo repository.WatchRepository, brandRepo repository.BrandRepository) WatchService {
	return &watchService{watchRepo: watchRepo, brandRepo: brandRepo}
}

func validateYear(year int32) error {
	current := int32(time.Now().Year())
	if year < domain.MinWatchYear || year > current {
		return domain.NewValidation(fmt.Sprintf("year must be a 4-digit number between %d and %d", domain.MinWatchYear, current))
	}
	return nil
}

func (s *watchService) Create(ctx context.Context, input WatchInput) (*domain.Watch, error) {
	var missing []string
	if input.Model == "" {
		missing = append(missing, "model")
	}
	if input.Year == nil {
		missing = append(missing, "year")
	}
	if input.RentalDayPrice == nil {
		missing = append(missing, "rental_day_price")
	}
	if input.Condition == "" {
		missing = append(missing, "condition")
	}
	if input.Quantity == nil {
		missing = append(missing, "quantity")
	}
	if input.BrandID == nil {
		missing = append(missing, "brand_id")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidation(fmt.Sprintf("All fields are required. Please enter: %s", strings.Join(missing, ", ")))
	}

	if err := validateYear(*input.Year); err != nil {
		return nil, err
	}
	if *input.RentalDayPrice < 0 {
		return nil, domain.NewValidation("rental_day_price must not be negative")
	}
	if *input.Quantity < 0 {
		return nil, domain.NewValidation("quantity must not be negative")
	}
	condition := NormalizeCondition(input.Condition)
	if !domain.ValidWatchCondition(condition) {
		return nil, domain.NewValidation("condition must be one of: New, Excellent, Good, Fair, Poor")
	}

	brand, err := s.brandRepo.GetByID(ctx, *input.BrandID)
	if err != nil {
		return nil, err
	}

	watch := &domain.Watch{
		BrandID:        brand.ID,
		BrandName:      brand.BrandName,
		Model:          strings.TrimSpace(input.Model),
		Year:           *input.Year,
		RentalDayPrice: *input.RentalDayPrice,
		Condition:      condition,
		Quantity:       *input.Quantity,
		Description:    strings.TrimSpace(input.Description),
		ImageURL:       strings.TrimSpace(input.ImageURL),
	}
	if err := s.watchRepo.Create(ctx, watch); err != nil {
		return nil, err
	}
	return watch, nil
}

func (s *watchService) Get(ctx context.Context, id int32) (*domain.Watch, error) {
	return s.watchRepo.GetByID(ctx, id)
}

func (s *watchService) List(ctx context.Context) ([]domain.Watch, error) {
	return s.watchRepo.List(ctx)
}

func (s *watchService) Update(ctx context.Context, id int32, input WatchInput) (*domain.Watch, error) {
	watch, err := s.watchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Provided fields overwrite, absent fields keep their value.
	if input.Model != "" {
		watch.Model = strings.TrimSpace(input.Model)
	}
	if input.Year != nil {
		if err := validateYear(*input.Year); err != nil {
			return nil, err
		}
		watch.Year = *input.Year
	}
	if input.RentalDayPrice != nil {
		if *input.RentalDayPrice < 0 {
			return nil, domain.NewValidation("rental_day_price must not be negative")
		}
		watch.RentalDayPrice = *input.RentalDayPrice
	}
	if input.Condition != "" {
		condition := NormalizeCondition(input.Condition)
		if !domain.ValidWatchCondition(condition) {
			return nil, domain.NewValidation("condition must be one of: New, Excellent, Good, Fair, Poor")
		}
		watch.Condition = condition
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, domain.NewValidation("quantity must not be negative")
		}
		watch.Quantity = *input.Quantity
	}
	if input.BrandID != nil {
		brand, err := s.brandRepo.GetByID(ctx, *input.BrandID)
		if err != nil {
			return nil, err
		}
		watch.BrandID = brand.ID
		watch.BrandName = brand.BrandName
	}
	if input.Description != "" {
		watch.Description = strings.TrimSpace(input.Description)
	}
	if input.ImageURL != "" {
		watch.ImageURL = strings.TrimSpace(input.ImageURL)
	}

	if err := s.watchRepo.Update(ctx, watch); err != nil {
		return nil, err
	}
	return watch, nil
}

func (s *watchService) Delete(ctx context.Context, id int32) error {
	return s.watchRepo.Delete(ctx, id)
}

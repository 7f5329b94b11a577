package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"timeless-backend/internal/domain"
	"timeless-backend/internal/logger"
	"timeless-backend/internal/repository"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	watchRepo  repository.WatchRepository
}

func NewRentalService(rentalRepo repository.RentalRepository, watchRepo repository.WatchRepository) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		watchRepo:  watchRepo,
	}
}

// Create reserves one unit of the watch and persists the rental. The
// ordering is validate, look up, reserve, insert: the reservation is an
// atomic conditional decrement, and a failed insert releases the unit
// again so inventory only drifts if the process dies in between.
func (s *rentalService) Create(ctx context.Context, actor domain.Actor, input CreateRentalInput) (*domain.Rental, error) {
	var missing []string
	if input.WatchID == nil {
		missing = append(missing, "watch_id")
	}
	if input.RentalDays == nil {
		missing = append(missing, "rental_days")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidation(fmt.Sprintf("All fields are required. Please enter: %s", strings.Join(missing, ", ")))
	}
	if *input.RentalDays < 1 {
		return nil, domain.NewValidation("rental_days must be at least 1")
	}

	mode := domain.CollectionModePickup
	if input.CollectionMode != "" {
		mode = domain.CollectionMode(input.CollectionMode)
		if !domain.ValidCollectionMode(mode) {
			return nil, domain.NewValidation("collection_mode must be Pickup or Delivery")
		}
	}

	watch, err := s.watchRepo.GetByID(ctx, *input.WatchID)
	if err != nil {
		return nil, err
	}

	if err := s.watchRepo.ReserveUnit(ctx, watch.ID); err != nil {
		return nil, err
	}

	days := *input.RentalDays
	start := time.Now()
	rental := &domain.Rental{
		UserID:     actor.ID,
		WatchID:    watch.ID,
		RentalDays: days,
		// Price snapshot: later watch price changes never recompute this.
		TotalRentalPrice: watch.RentalDayPrice * float64(days),
		StartDate:        start,
		EndDate:          start.AddDate(0, 0, int(days)),
		Status:           domain.RentalStatusPending,
		CollectionMode:   mode,
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		// Hand the unit back; best effort, the audit job catches the rest.
		if relErr := s.watchRepo.ReleaseUnit(ctx, watch.ID); relErr != nil {
			logger.Error("failed to release unit after rental insert failure", "watch_id", watch.ID, "error", relErr)
		}
		return nil, err
	}

	rental.User = &domain.RentalUser{ID: actor.ID}
	rental.Watch = &domain.RentalWatch{ID: watch.ID, Model: watch.Model, Year: watch.Year, Brand: watch.BrandName}
	return rental, nil
}

func (s *rentalService) Get(ctx context.Context, actor domain.Actor, id int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental.UserID != actor.ID && !actor.IsAdmin() {
		return nil, domain.NewForbidden("not authorized to view this rental")
	}
	return rental, nil
}

func (s *rentalService) ListAll(ctx context.Context, actor domain.Actor) ([]domain.Rental, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewForbidden("not authorized as admin")
	}
	return s.rentalRepo.ListAll(ctx)
}

func (s *rentalService) ListOwn(ctx context.Context, actor domain.Actor) ([]domain.Rental, error) {
	return s.rentalRepo.ListByUser(ctx, actor.ID)
}

func (s *rentalService) UpdateStatus(ctx context.Context, actor domain.Actor, id int32, status string) (*domain.Rental, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewForbidden("not authorized as admin")
	}

	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newStatus := domain.RentalStatus(status)
	if !domain.ValidRentalStatus(newStatus) {
		return nil, domain.NewValidation("rental_status must be one of: Pending, Active, Completed")
	}

	// Any status may move to any other; there is no transition guard.
	if err := s.rentalRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	rental.Status = newStatus
	return rental, nil
}

// Delete removes the rental and returns its unit to the watch's stock.
// The release is a no-op when the watch has since been deleted.
func (s *rentalService) Delete(ctx context.Context, actor domain.Actor, id int32) error {
	if !actor.IsAdmin() {
		return domain.NewForbidden("not authorized as admin")
	}

	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.watchRepo.ReleaseUnit(ctx, rental.WatchID); err != nil {
		return err
	}
	return s.rentalRepo.Delete(ctx, id)
}

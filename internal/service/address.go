package service

import (
	"context"
	"fmt"
	"strings"

	"timeless-backend/internal/domain"
	"timeless-backend/internal/repository"
)

type addressService struct {
	addrRepo repository.AddressRepository
	userRepo repository.UserRepository
}

func NewAddressService(addrRepo repository.AddressRepository, userRepo repository.UserRepository) AddressService {
	return &addressService{addrRepo: addrRepo, userRepo: userRepo}
}

func validateAddressInput(input AddressInput) error {
	var missing []string
	if input.StreetAddress == "" {
		missing = append(missing, "street address")
	}
	if input.Suburb == "" {
		missing = append(missing, "suburb")
	}
	if input.State == "" {
		missing = append(missing, "state")
	}
	if input.Postcode == "" {
		missing = append(missing, "postcode")
	}
	if len(missing) > 0 {
		return domain.NewValidation(fmt.Sprintf("All fields are required. Please enter: %s", strings.Join(missing, ", ")))
	}
	if !domain.ValidState(input.State) {
		return domain.NewValidation("please provide a valid Australian state")
	}
	if !postcodePattern.MatchString(input.Postcode) {
		return domain.NewValidation("please provide a valid 4-digit Australian postcode")
	}
	return nil
}

func (s *addressService) Create(ctx context.Context, input AddressInput) (*domain.Address, error) {
	if err := validateAddressInput(input); err != nil {
		return nil, err
	}
	addr := &domain.Address{
		StreetAddress: input.StreetAddress,
		Suburb:        input.Suburb,
		State:         input.State,
		Postcode:      input.Postcode,
	}
	if err := s.addrRepo.Create(ctx, addr); err != nil {
		return nil, err
	}
	return addr, nil
}

// ownsAddress reports whether the actor's own profile references the
// address. Admins bypass this check in the callers.
func (s *addressService) ownsAddress(ctx context.Context, actor domain.Actor, id int32) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		return false, err
	}
	return user.AddressID != nil && *user.AddressID == id, nil
}

func (s *addressService) Get(ctx context.Context, actor domain.Actor, id int32) (*domain.Address, error) {
	addr, err := s.addrRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		owns, err := s.ownsAddress(ctx, actor, id)
		if err != nil {
			return nil, err
		}
		if !owns {
			return nil, domain.NewForbidden("not authorized to view this address")
		}
	}
	return addr, nil
}

func (s *addressService) List(ctx context.Context) ([]domain.Address, error) {
	return s.addrRepo.List(ctx)
}

func (s *addressService) Update(ctx context.Context, actor domain.Actor, id int32, input AddressInput) (*domain.Address, error) {
	addr, err := s.addrRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		owns, err := s.ownsAddress(ctx, actor, id)
		if err != nil {
			return nil, err
		}
		if !owns {
			return nil, domain.NewForbidden("not authorized to update this address")
		}
	}

	if input.StreetAddress != "" {
		addr.StreetAddress = input.StreetAddress
	}
	if input.Suburb != "" {
		addr.Suburb = input.Suburb
	}
	if input.State != "" {
		if !domain.ValidState(input.State) {
			return nil, domain.NewValidation("please provide a valid Australian state")
		}
		addr.State = input.State
	}
	if input.Postcode != "" {
		if !postcodePattern.MatchString(input.Postcode) {
			return nil, domain.NewValidation("please provide a valid 4-digit Australian postcode")
		}
		addr.Postcode = input.Postcode
	}

	if err := s.addrRepo.Update(ctx, addr); err != nil {
		return nil, err
	}
	return addr, nil
}

func (s *addressService) Delete(ctx context.Context, id int32) error {
	return s.addrRepo.Delete(ctx, id)
}

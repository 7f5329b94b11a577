package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"timeless-backend/internal/domain"
	"timeless-backend/internal/repository"
	"timeless-backend/internal/security"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
var postcodePattern = regexp.MustCompile(`^\d{4}$`)

type authService struct {
	userRepo repository.UserRepository
	addrRepo repository.AddressRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, addrRepo repository.AddressRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		addrRepo: addrRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	var missing []string
	if input.FirstName == "" {
		missing = append(missing, "first name")
	}
	if input.LastName == "" {
		missing = append(missing, "last name")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if input.Password == "" {
		missing = append(missing, "password")
	}
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
		return nil, "", domain.NewValidation(fmt.Sprintf("All fields are required. Please enter: %s", strings.Join(missing, ", ")))
	}

	if !emailPattern.MatchString(input.Email) {
		return nil, "", domain.NewValidation("please provide a valid email address")
	}
	if len(input.Password) < 8 {
		return nil, "", domain.NewValidation("password must be at least 8 characters")
	}
	if !domain.ValidState(input.State) {
		return nil, "", domain.NewValidation("please provide a valid Australian state")
	}
	if !postcodePattern.MatchString(input.Postcode) {
		return nil, "", domain.NewValidation("please provide a valid 4-digit Australian postcode")
	}

	exists, err := s.userRepo.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", domain.NewConflict("User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	// The address is created first; the user references it.
	addr := &domain.Address{
		StreetAddress: input.StreetAddress,
		Suburb:        input.Suburb,
		State:         input.State,
		Postcode:      input.Postcode,
	}
	if err := s.addrRepo.Create(ctx, addr); err != nil {
		return nil, "", err
	}

	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		PhoneNumber:  input.PhoneNumber,
		Role:         domain.RoleUser,
		AddressID:    &addr.ID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}
	user.Address = addr

	token, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.NewValidation("email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// An unknown email reads the same as a wrong password.
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, "", domain.NewUnauthorized("invalid email or password")
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.NewUnauthorized("invalid email or password")
	}

	if user.AddressID != nil {
		if addr, err := s.addrRepo.GetByID(ctx, *user.AddressID); err == nil {
			user.Address = addr
		}
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.AddressID != nil {
		if addr, err := s.addrRepo.GetByID(ctx, *user.AddressID); err == nil {
			user.Address = addr
		}
	}
	return user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID int32, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Provided fields overwrite, absent fields keep their value.
	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Email != "" {
		if !emailPattern.MatchString(input.Email) {
			return nil, domain.NewValidation("please provide a valid email address")
		}
		user.Email = input.Email
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.Password != "" {
		if len(input.Password) < 8 {
			return nil, domain.NewValidation("password must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if input.StreetAddress != "" || input.Suburb != "" || input.State != "" || input.Postcode != "" {
		if input.State != "" && !domain.ValidState(input.State) {
			return nil, domain.NewValidation("please provide a valid Australian state")
		}
		if input.Postcode != "" && !postcodePattern.MatchString(input.Postcode) {
			return nil, domain.NewValidation("please provide a valid 4-digit Australian postcode")
		}
		if err := s.updateAddress(ctx, user, input); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if user.AddressID != nil && user.Address == nil {
		if addr, err := s.addrRepo.GetByID(ctx, *user.AddressID); err == nil {
			user.Address = addr
		}
	}
	return user, nil
}

func (s *authService) updateAddress(ctx context.Context, user *domain.User, input UpdateProfileInput) error {
	var addr *domain.Address
	if user.AddressID != nil {
		existing, err := s.addrRepo.GetByID(ctx, *user.AddressID)
		if err != nil && !domain.IsKind(err, domain.KindNotFound) {
			return err
		}
		addr = existing
	}

	if addr == nil {
		// No address on file: all four fields are needed to create one.
		if input.StreetAddress == "" || input.Suburb == "" || input.State == "" || input.Postcode == "" {
			return domain.NewValidation("street address, suburb, state and postcode are required to create an address")
		}
		addr = &domain.Address{
			StreetAddress: input.StreetAddress,
			Suburb:        input.Suburb,
			State:         input.State,
			Postcode:      input.Postcode,
		}
		if err := s.addrRepo.Create(ctx, addr); err != nil {
			return err
		}
		user.AddressID = &addr.ID
		user.Address = addr
		return nil
	}

	if input.StreetAddress != "" {
		addr.StreetAddress = input.StreetAddress
	}
	if input.Suburb != "" {
		addr.Suburb = input.Suburb
	}
	if input.State != "" {
		addr.State = input.State
	}
	if input.Postcode != "" {
		addr.Postcode = input.Postcode
	}
	if err := s.addrRepo.Update(ctx, addr); err != nil {
		return err
	}
	user.Address = addr
	return nil
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"timeless-backend/internal/domain"
	"timeless-backend/internal/repository"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	rentalRepo  repository.RentalRepository
	// now is swappable in tests; transaction ids derive from it.
	now func() time.Time
}

func NewPaymentService(paymentRepo repository.PaymentRepository, rentalRepo repository.RentalRepository) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		rentalRepo:  rentalRepo,
		now:         time.Now,
	}
}

// newTransactionID derives a transaction id from a nanosecond clock
// reading, unique within the process as long as the clock resolution
// keeps up.
func (s *paymentService) newTransactionID() string {
	return fmt.Sprintf("TXN-%d", s.now().UnixNano())
}

func (s *paymentService) Create(ctx context.Context, actor domain.Actor, input CreatePaymentInput) (*domain.Payment, error) {
	var missing []string
	if input.RentalID == nil {
		missing = append(missing, "rental_id")
	}
	if input.Amount == nil {
		missing = append(missing, "amount")
	}
	if input.Method == "" {
		missing = append(missing, "payment_method")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidation(fmt.Sprintf("All fields are required. Please enter: %s", strings.Join(missing, ", ")))
	}

	if *input.Amount < 0 {
		return nil, domain.NewValidation("amount must not be negative")
	}
	method := domain.PaymentMethod(input.Method)
	if !domain.ValidPaymentMethod(method) {
		return nil, domain.NewValidation("payment_method must be one of: Credit Card, PayPal, Bank Transfer, Cash")
	}

	rental, err := s.rentalRepo.GetByID(ctx, *input.RentalID)
	if err != nil {
		return nil, err
	}
	if rental.UserID != actor.ID && !actor.IsAdmin() {
		return nil, domain.NewForbidden("not authorized to pay for this rental")
	}

	paidAt := s.now()
	payment := &domain.Payment{
		RentalID:      rental.ID,
		Amount:        *input.Amount,
		Status:        domain.PaymentStatusCompleted,
		Method:        method,
		TransactionID: s.newTransactionID(),
		PaymentDate:   &paidAt,
		Comment:       strings.TrimSpace(input.Comment),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// Get resolves ownership transitively: payment -> rental -> user.
func (s *paymentService) Get(ctx context.Context, actor domain.Actor, id int32) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		rental, err := s.rentalRepo.GetByID(ctx, payment.RentalID)
		if err != nil {
			return nil, err
		}
		if rental.UserID != actor.ID {
			return nil, domain.NewForbidden("not authorized to view this payment")
		}
	}
	return payment, nil
}

func (s *paymentService) ListAll(ctx context.Context, actor domain.Actor) ([]domain.Payment, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewForbidden("not authorized as admin")
	}
	return s.paymentRepo.ListAll(ctx)
}

func (s *paymentService) ListOwn(ctx context.Context, actor domain.Actor) ([]domain.Payment, error) {
	return s.paymentRepo.ListByUser(ctx, actor.ID)
}

func (s *paymentService) UpdateStatus(ctx context.Context, actor domain.Actor, id int32, input UpdatePaymentStatusInput) (*domain.Payment, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewForbidden("not authorized as admin")
	}

	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newStatus := domain.PaymentStatus(input.Status)
	if !domain.ValidPaymentStatus(newStatus) {
		return nil, domain.NewValidation("payment_status must be one of: Pending, Completed, Failed, Refunded")
	}

	if newStatus == domain.PaymentStatusCompleted {
		if input.TransactionID != "" {
			payment.TransactionID = strings.TrimSpace(input.TransactionID)
		}
		if payment.TransactionID == "" {
			return nil, domain.NewValidation("Transaction ID is required for completed payments")
		}
	} else if input.TransactionID != "" {
		payment.TransactionID = strings.TrimSpace(input.TransactionID)
	}

	// The payment date is stamped on the transition into Completed, an
	// explicit step of this write path rather than a persistence hook.
	if newStatus == domain.PaymentStatusCompleted && payment.Status != domain.PaymentStatusCompleted {
		paidAt := s.now()
		payment.PaymentDate = &paidAt
	}
	payment.Status = newStatus

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) Delete(ctx context.Context, actor domain.Actor, id int32) error {
	if !actor.IsAdmin() {
		return domain.NewForbidden("not authorized as admin")
	}
	if _, err := s.paymentRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.paymentRepo.Delete(ctx, id)
}

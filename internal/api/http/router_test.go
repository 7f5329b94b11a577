package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"timeless-backend/internal/domain"
	"timeless-backend/internal/security"
)

type testEnv struct {
	router   http.Handler
	auth     *MockAuthService
	address  *MockAddressService
	brand    *MockBrandService
	watch    *MockWatchService
	rental   *MockRentalService
	payment  *MockPaymentService
	userTok  string
	adminTok string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tokens := security.NewTokenManager("test-secret-that-is-long-enough-000", 1)
	userTok, err := tokens.GenerateToken(7, domain.RoleUser)
	if err != nil {
		t.Fatalf("generate user token: %v", err)
	}
	adminTok, err := tokens.GenerateToken(99, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("generate admin token: %v", err)
	}

	env := &testEnv{
		auth:     new(MockAuthService),
		address:  new(MockAddressService),
		brand:    new(MockBrandService),
		watch:    new(MockWatchService),
		rental:   new(MockRentalService),
		payment:  new(MockPaymentService),
		userTok:  userTok,
		adminTok: adminTok,
	}
	env.router = NewRouter(Handlers{
		User:    NewUserHandler(env.auth),
		Address: NewAddressHandler(env.address),
		Brand:   NewBrandHandler(env.brand),
		Watch:   NewWatchHandler(env.watch),
		Rental:  NewRentalHandler(env.rental),
		Payment: NewPaymentHandler(env.payment),
	}, tokens)
	return env
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_AuthGating(t *testing.T) {
	t.Run("Missing token", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/api/rentals", "", map[string]any{"watch_id": 2, "rental_days": 3})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var body ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "Not authorized, no token provided", body.Message)
	})

	t.Run("Garbage token", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/api/rentals", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var body ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Not authorized, token failed", body.Message)
	})

	t.Run("User token on admin route", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(t, http.MethodGet, "/api/rentals", env.userTok, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		var body ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Not authorized as admin", body.Message)
		env.rental.AssertNotCalled(t, "ListAll", mock.Anything, mock.Anything)
	})

	t.Run("Public watch listing needs no token", func(t *testing.T) {
		env := newTestEnv(t)
		env.watch.On("List", mock.Anything).Return([]domain.Watch{{ID: 1, Model: "Speedmaster"}}, nil)

		rec := env.do(t, http.MethodGet, "/api/watches", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Request id echoed", func(t *testing.T) {
		env := newTestEnv(t)
		env.watch.On("List", mock.Anything).Return([]domain.Watch{}, nil)

		rec := env.do(t, http.MethodGet, "/api/watches", "", nil)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})
}

func TestRouter_RentalRoutes(t *testing.T) {
	userActor := domain.Actor{ID: 7, Role: domain.RoleUser}
	adminActor := domain.Actor{ID: 99, Role: domain.RoleAdmin}

	t.Run("Create passes the authenticated actor", func(t *testing.T) {
		env := newTestEnv(t)
		env.rental.On("Create", mock.Anything, userActor, mock.AnythingOfType("service.CreateRentalInput")).
			Return(&domain.Rental{ID: 1, UserID: 7, Status: domain.RentalStatusPending}, nil)

		rec := env.do(t, http.MethodPost, "/api/rentals", env.userTok, map[string]any{"watch_id": 2, "rental_days": 3})
		assert.Equal(t, http.StatusCreated, rec.Code)

		var rental domain.Rental
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rental))
		assert.Equal(t, int32(1), rental.ID)
	})

	t.Run("Out of stock yields 400", func(t *testing.T) {
		env := newTestEnv(t)
		env.rental.On("Create", mock.Anything, userActor, mock.AnythingOfType("service.CreateRentalInput")).
			Return(nil, domain.NewValidation("watch is out of stock"))

		rec := env.do(t, http.MethodPost, "/api/rentals", env.userTok, map[string]any{"watch_id": 2, "rental_days": 3})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body.Message, "out of stock")
	})

	t.Run("Foreign rental yields 403", func(t *testing.T) {
		env := newTestEnv(t)
		env.rental.On("Get", mock.Anything, userActor, int32(5)).
			Return(nil, domain.NewForbidden("not authorized to view this rental"))

		rec := env.do(t, http.MethodGet, "/api/rentals/5", env.userTok, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Missing rental yields 404", func(t *testing.T) {
		env := newTestEnv(t)
		env.rental.On("Get", mock.Anything, userActor, int32(5)).
			Return(nil, domain.NewNotFound("rental not found"))

		rec := env.do(t, http.MethodGet, "/api/rentals/5", env.userTok, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Own listing does not collide with id route", func(t *testing.T) {
		env := newTestEnv(t)
		env.rental.On("ListOwn", mock.Anything, userActor).Return([]domain.Rental{{ID: 1, UserID: 7}}, nil)

		rec := env.do(t, http.MethodGet, "/api/rentals/user", env.userTok, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		env.rental.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Admin status patch", func(t *testing.T) {
		env := newTestEnv(t)
		env.rental.On("UpdateStatus", mock.Anything, adminActor, int32(1), "Active").
			Return(&domain.Rental{ID: 1, Status: domain.RentalStatusActive}, nil)

		rec := env.do(t, http.MethodPatch, "/api/rentals/1", env.adminTok, map[string]string{"rental_status": "Active"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Admin delete responds with message", func(t *testing.T) {
		env := newTestEnv(t)
		env.rental.On("Delete", mock.Anything, adminActor, int32(1)).Return(nil)

		rec := env.do(t, http.MethodDelete, "/api/rentals/1", env.adminTok, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Rental deleted successfully", body["message"])
	})

	t.Run("Invalid JSON body yields 400", func(t *testing.T) {
		env := newTestEnv(t)

		req := httptest.NewRequest(http.MethodPost, "/api/rentals", bytes.NewBufferString("{not json"))
		req.Header.Set("Authorization", "Bearer "+env.userTok)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_PaymentRoutes(t *testing.T) {
	userActor := domain.Actor{ID: 7, Role: domain.RoleUser}
	adminActor := domain.Actor{ID: 99, Role: domain.RoleAdmin}

	t.Run("Create", func(t *testing.T) {
		env := newTestEnv(t)
		env.payment.On("Create", mock.Anything, userActor, mock.AnythingOfType("service.CreatePaymentInput")).
			Return(&domain.Payment{ID: 1, RentalID: 3, Status: domain.PaymentStatusCompleted, TransactionID: "TXN-1"}, nil)

		rec := env.do(t, http.MethodPost, "/api/payments", env.userTok, map[string]any{
			"rental_id": 3, "amount": 150, "payment_method": "Credit Card",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)

		var payment domain.Payment
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payment))
		assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
		assert.Equal(t, "TXN-1", payment.TransactionID)
	})

	t.Run("Own listing", func(t *testing.T) {
		env := newTestEnv(t)
		env.payment.On("ListOwn", mock.Anything, userActor).Return([]domain.Payment{{ID: 1}}, nil)

		rec := env.do(t, http.MethodGet, "/api/payments/user/me", env.userTok, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Completed without transaction id yields 400", func(t *testing.T) {
		env := newTestEnv(t)
		env.payment.On("UpdateStatus", mock.Anything, adminActor, int32(1), mock.AnythingOfType("service.UpdatePaymentStatusInput")).
			Return(nil, domain.NewValidation("Transaction ID is required for completed payments"))

		rec := env.do(t, http.MethodPatch, "/api/payments/1", env.adminTok, map[string]string{"payment_status": "Completed"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Admin listing forbidden for users via middleware", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(t, http.MethodGet, "/api/payments", env.userTok, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		env.payment.AssertNotCalled(t, "ListAll", mock.Anything, mock.Anything)
	})
}

func TestRouter_UserRoutes(t *testing.T) {
	t.Run("Register returns profile with token", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.On("Register", mock.Anything, mock.AnythingOfType("service.RegisterInput")).
			Return(&domain.User{ID: 7, FirstName: "Ada", Email: "ada@example.com", Role: domain.RoleUser}, "tok", nil)

		rec := env.do(t, http.MethodPost, "/api/users/register", "", map[string]string{
			"first_name": "Ada", "last_name": "Lovelace", "email": "ada@example.com", "password": "password123",
			"street_address": "1 George St", "suburb": "Sydney", "state": "NSW", "postcode": "2000",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "tok", body["token"])
		assert.Equal(t, "ada@example.com", body["email"])
	})

	t.Run("Duplicate registration yields 409", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.On("Register", mock.Anything, mock.AnythingOfType("service.RegisterInput")).
			Return(nil, "", domain.NewConflict("User already exists"))

		rec := env.do(t, http.MethodPost, "/api/users/register", "", map[string]string{"email": "ada@example.com"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Bad login yields 401", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.On("Login", mock.Anything, "ada@example.com", "wrong").
			Return(nil, "", domain.NewUnauthorized("invalid email or password"))

		rec := env.do(t, http.MethodPost, "/api/users/login", "", map[string]string{
			"email": "ada@example.com", "password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var body ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "invalid email or password", body.Message)
	})

	t.Run("Profile uses token identity", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.On("GetProfile", mock.Anything, int32(7)).
			Return(&domain.User{ID: 7, FirstName: "Ada"}, nil)

		rec := env.do(t, http.MethodGet, "/api/users/profile", env.userTok, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

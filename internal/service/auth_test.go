package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/freightdesk/freightdesk-go/internal/crypto"
	"github.com/freightdesk/freightdesk-go/internal/model"
	"github.com/freightdesk/freightdesk-go/internal/repository"
)

// memAuthStore is an in-memory AuthStore for tests.
type memAuthStore struct {
	mu        sync.Mutex
	users     map[int64]*model.User
	companies map[int64]*model.Company
	nextID    int64
	failTx    bool
}

func newMemAuthStore() *memAuthStore {
	return &memAuthStore{
		users:     make(map[int64]*model.User),
		companies: make(map[int64]*model.Company),
		nextID:    1,
	}
}

func (s *memAuthStore) CreateCompanyWithAdmin(ctx context.Context, company *model.Company, admin *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failTx {
		return errors.New("tx failed")
	}

	for _, u := range s.users {
		if u.Email == admin.Email {
			return repository.ErrDuplicateEmail
		}
	}

	company.ID = s.nextID
	s.nextID++
	c := *company
	s.companies[c.ID] = &c

	admin.ID = s.nextID
	s.nextID++
	admin.CompanyID = company.ID
	u := *admin
	s.users[u.ID] = &u

	return nil
}

func (s *memAuthStore) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *memAuthStore) CompanyByID(ctx context.Context, id int64) (*model.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.companies[id]
	if !ok {
		return nil, repository.ErrCompanyNotFound
	}
	copied := *c
	return &copied, nil
}

func newTestAuthService(store AuthStore) *AuthService {
	return NewAuthService(store, "test-secret", time.Hour)
}

func validRegistration() model.RegisterRequest {
	return model.RegisterRequest{
		CompanyName:    "Acme",
		CompanyAddress: "1 Rd",
		Email:          "a@acme.com",
		Password:       "secret1",
	}
}

func TestRegisterSuccess(t *testing.T) {
	store := newMemAuthStore()
	svc := newTestAuthService(store)

	resp, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if resp.CompanyID == 0 || resp.UserID == 0 {
		t.Errorf("Register() returned zero ids: %+v", resp)
	}
	if resp.Token == "" {
		t.Error("Register() returned empty token")
	}

	claims, err := crypto.ValidateToken(resp.Token, "test-secret")
	if err != nil {
		t.Fatalf("token from Register() does not validate: %v", err)
	}
	if claims.CompanyID != resp.CompanyID || claims.UserID != resp.UserID {
		t.Errorf("token claims %+v do not match response %+v", claims, resp)
	}
	if claims.Role != model.RoleAdmin {
		t.Errorf("first registered user role = %q, want admin", claims.Role)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestAuthService(newMemAuthStore())

	tests := []struct {
		name  string
		req   model.RegisterRequest
		field string
	}{
		{"missing company name", model.RegisterRequest{CompanyAddress: "1 Rd", Email: "a@acme.com", Password: "secret1"}, "company_name"},
		{"missing company address", model.RegisterRequest{CompanyName: "Acme", Email: "a@acme.com", Password: "secret1"}, "company_address"},
		{"missing email", model.RegisterRequest{CompanyName: "Acme", CompanyAddress: "1 Rd", Password: "secret1"}, "email"},
		{"invalid email", model.RegisterRequest{CompanyName: "Acme", CompanyAddress: "1 Rd", Email: "not-an-email", Password: "secret1"}, "email"},
		{"short password", model.RegisterRequest{CompanyName: "Acme", CompanyAddress: "1 Rd", Email: "a@acme.com", Password: "abc"}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Register() error = %v, want ValidationError", err)
			}
			if _, ok := ve.Fields[tt.field]; !ok {
				t.Errorf("ValidationError fields = %v, want entry for %q", ve.Fields, tt.field)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newMemAuthStore()
	svc := newTestAuthService(store)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("first Register() unexpected error: %v", err)
	}

	usersBefore := len(store.users)
	companiesBefore := len(store.companies)

	req := validRegistration()
	req.CompanyName = "Other Co"
	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("second Register() error = %v, want ErrEmailTaken", err)
	}

	if len(store.users) != usersBefore || len(store.companies) != companiesBefore {
		t.Error("duplicate registration changed row counts")
	}
}

func TestRegisterTransactionFailure(t *testing.T) {
	store := newMemAuthStore()
	store.failTx = true
	svc := newTestAuthService(store)

	_, err := svc.Register(context.Background(), validRegistration())
	if err == nil {
		t.Fatal("Register() expected error on transaction failure")
	}

	var ve *ValidationError
	if errors.As(err, &ve) || errors.Is(err, ErrEmailTaken) {
		t.Errorf("transaction failure surfaced as %v, want generic error", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	store := newMemAuthStore()
	svc := newTestAuthService(store)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	resp, err := svc.Login(context.Background(), model.LoginRequest{Email: "a@acme.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Error("Login() returned empty token")
	}
	if resp.User.Email != "a@acme.com" {
		t.Errorf("Login() user email = %q", resp.User.Email)
	}
	if resp.Company.CompanyName != "Acme" {
		t.Errorf("Login() company = %q, want Acme", resp.Company.CompanyName)
	}
}

func TestLoginFailureUniform(t *testing.T) {
	store := newMemAuthStore()
	svc := newTestAuthService(store)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	// Wrong password for a known email and an unknown email must be
	// indistinguishable.
	_, wrongPass := svc.Login(context.Background(), model.LoginRequest{Email: "a@acme.com", Password: "wrong-password"})
	_, unknown := svc.Login(context.Background(), model.LoginRequest{Email: "nobody@acme.com", Password: "secret1"})

	if !errors.Is(wrongPass, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", wrongPass)
	}
	if !errors.Is(unknown, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", unknown)
	}
}

func TestLoginValidation(t *testing.T) {
	svc := newTestAuthService(newMemAuthStore())

	_, err := svc.Login(context.Background(), model.LoginRequest{})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Login() error = %v, want ValidationError", err)
	}
	if _, ok := ve.Fields["email"]; !ok {
		t.Errorf("ValidationError fields = %v, want entry for email", ve.Fields)
	}
	if _, ok := ve.Fields["password"]; !ok {
		t.Errorf("ValidationError fields = %v, want entry for password", ve.Fields)
	}
}

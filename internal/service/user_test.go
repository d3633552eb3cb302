package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/freightdesk/freightdesk-go/internal/crypto"
	"github.com/freightdesk/freightdesk-go/internal/model"
	"github.com/freightdesk/freightdesk-go/internal/repository"
)

// memUserStore is an in-memory UserStore for tests.
type memUserStore struct {
	mu     sync.Mutex
	users  map[int64]*model.User
	nextID int64
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[int64]*model.User), nextID: 1}
}

func (s *memUserStore) Create(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return repository.ErrDuplicateEmail
		}
	}

	user.ID = s.nextID
	s.nextID++
	copied := *user
	s.users[copied.ID] = &copied
	return nil
}

func (s *memUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
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

func (s *memUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *memUserStore) ListByCompany(ctx context.Context, companyID int64) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.User
	for _, u := range s.users {
		if u.CompanyID == companyID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *memUserStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func validUserRequest() model.CreateUserRequest {
	return model.CreateUserRequest{
		Email:    "b@acme.com",
		Password: "secret1",
		Role:     model.RoleSeller,
	}
}

func TestUserCreateSuccess(t *testing.T) {
	store := newMemUserStore()
	svc := NewUserService(store)

	id, err := svc.Create(context.Background(), 3, validUserRequest())
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	user, err := store.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	if user.CompanyID != 3 {
		t.Errorf("persisted company id = %d, want 3 (the creator's)", user.CompanyID)
	}
	if user.PasswordHash == "secret1" || user.PasswordHash == "" {
		t.Error("password was not hashed before persistence")
	}

	match, err := crypto.VerifyPassword("secret1", user.PasswordHash)
	if err != nil || !match {
		t.Errorf("stored hash does not verify the password: match=%v err=%v", match, err)
	}
}

func TestUserCreateValidation(t *testing.T) {
	svc := NewUserService(newMemUserStore())

	tests := []struct {
		name  string
		req   model.CreateUserRequest
		field string
	}{
		{"missing email", model.CreateUserRequest{Password: "secret1", Role: "seller"}, "email"},
		{"invalid email", model.CreateUserRequest{Email: "nope", Password: "secret1", Role: "seller"}, "email"},
		{"short password", model.CreateUserRequest{Email: "b@acme.com", Password: "abc", Role: "seller"}, "password"},
		{"missing role", model.CreateUserRequest{Email: "b@acme.com", Password: "secret1"}, "role"},
		{"unknown role", model.CreateUserRequest{Email: "b@acme.com", Password: "secret1", Role: "owner"}, "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 1, tt.req)

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Create() error = %v, want ValidationError", err)
			}
			if _, ok := ve.Fields[tt.field]; !ok {
				t.Errorf("ValidationError fields = %v, want entry for %q", ve.Fields, tt.field)
			}
		})
	}
}

func TestUserCreateDuplicateEmailAcrossCompanies(t *testing.T) {
	store := newMemUserStore()
	svc := NewUserService(store)

	if _, err := svc.Create(context.Background(), 1, validUserRequest()); err != nil {
		t.Fatalf("first Create() unexpected error: %v", err)
	}

	// Email uniqueness is global, so a different company still conflicts.
	_, err := svc.Create(context.Background(), 2, validUserRequest())
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("second Create() error = %v, want ErrEmailTaken", err)
	}
}

func TestUserGetScopedToCompany(t *testing.T) {
	store := newMemUserStore()
	svc := NewUserService(store)

	id, err := svc.Create(context.Background(), 1, validUserRequest())
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if _, err := svc.Get(context.Background(), 1, id); err != nil {
		t.Errorf("Get() by owner unexpected error: %v", err)
	}

	_, crossTenant := svc.Get(context.Background(), 2, id)
	_, missing := svc.Get(context.Background(), 1, id+100)

	if !errors.Is(crossTenant, ErrUserNotFound) {
		t.Errorf("cross-tenant Get() error = %v, want ErrUserNotFound", crossTenant)
	}
	if !errors.Is(missing, ErrUserNotFound) {
		t.Errorf("missing row Get() error = %v, want ErrUserNotFound", missing)
	}
}

func TestUserDeleteScopedToCompany(t *testing.T) {
	store := newMemUserStore()
	svc := NewUserService(store)

	id, err := svc.Create(context.Background(), 1, validUserRequest())
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if err := svc.Delete(context.Background(), 2, id); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("cross-tenant Delete() error = %v, want ErrUserNotFound", err)
	}
	if _, err := store.GetByID(context.Background(), id); err != nil {
		t.Fatal("cross-tenant delete removed the row")
	}

	if err := svc.Delete(context.Background(), 1, id); err != nil {
		t.Fatalf("owner Delete() unexpected error: %v", err)
	}
}

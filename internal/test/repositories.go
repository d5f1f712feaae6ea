package test

import (
	"context"
	"sort"
	"strings"
	"sync"

	domainErrors "github.com/polkiloo/customerhub/internal/domain/errors"
	"github.com/polkiloo/customerhub/internal/domain/model"
	"github.com/polkiloo/customerhub/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	Next  int64
	Err   error
	// LookupErr is returned by GetByEmail only, leaving Create untouched.
	LookupErr error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		Next:  1,
	}
}

// Create registers user unless email is taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Name: name, Email: email, PasswordHash: passwordHash}
	s.Next++
	s.Users[email] = user
	return user, nil
}

// GetByEmail fetches user by exact email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.LookupErr != nil {
		return nil, s.LookupErr
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// CustomerRepositoryStub keeps customers in memory and mimics the SQL semantics.
type CustomerRepositoryStub struct {
	mu        sync.Mutex
	Customers map[int64]model.Customer
	Err       error
}

// NewCustomerRepositoryStub seeds the stub with provided customers.
func NewCustomerRepositoryStub(seed ...model.Customer) *CustomerRepositoryStub {
	s := &CustomerRepositoryStub{Customers: make(map[int64]model.Customer)}
	for _, c := range seed {
		s.Customers[c.ID] = c
	}
	return s
}

// List returns all customers ordered by id.
func (s *CustomerRepositoryStub) List(ctx context.Context) ([]model.Customer, error) {
	return s.filter(func(model.Customer) bool { return true })
}

// GetByID returns customer or not found.
func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	c, ok := s.Customers[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &c, nil
}

// Update replaces every field, nil values become empty.
func (s *CustomerRepositoryStub) Update(ctx context.Context, id int64, upd model.CustomerUpdate) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	if _, ok := s.Customers[id]; !ok {
		return 0, nil
	}
	s.Customers[id] = model.Customer{
		ID:      id,
		Name:    deref(upd.Name),
		Email:   deref(upd.Email),
		Phone:   deref(upd.Phone),
		Company: deref(upd.Company),
	}
	return 1, nil
}

// Delete removes customer and reports affected rows.
func (s *CustomerRepositoryStub) Delete(ctx context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	if _, ok := s.Customers[id]; !ok {
		return 0, nil
	}
	delete(s.Customers, id)
	return 1, nil
}

// Search performs case-insensitive substring matching on name and email.
func (s *CustomerRepositoryStub) Search(ctx context.Context, query string) ([]model.Customer, error) {
	q := strings.ToLower(query)
	return s.filter(func(c model.Customer) bool {
		return strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Email), q)
	})
}

func (s *CustomerRepositoryStub) filter(keep func(model.Customer) bool) ([]model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Customer, 0, len(s.Customers))
	for _, c := range s.Customers {
		if keep(c) {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var _ repository.UserRepository = (*UserRepositoryStub)(nil)
var _ repository.CustomerRepository = (*CustomerRepositoryStub)(nil)

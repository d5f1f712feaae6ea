package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/customerhub/internal/domain/errors"
	"github.com/polkiloo/customerhub/internal/domain/model"
	"github.com/polkiloo/customerhub/internal/domain/repository"
)

// CustomerUseCase exposes read, update, delete and search over customers.
type CustomerUseCase struct {
	customers repository.CustomerRepository
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(customers repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers}
}

// List returns every customer ordered by id.
func (u *CustomerUseCase) List(ctx context.Context) ([]model.Customer, error) {
	return u.customers.List(ctx)
}

// Get returns a single customer or ErrNotFound.
func (u *CustomerUseCase) Get(ctx context.Context, id int64) (*model.Customer, error) {
	if id <= 0 {
		return nil, domainErrors.ErrNotFound
	}
	return u.customers.GetByID(ctx, id)
}

// Update overwrites all mutable fields of a customer.
func (u *CustomerUseCase) Update(ctx context.Context, id int64, upd model.CustomerUpdate) error {
	if id <= 0 {
		return domainErrors.ErrNotFound
	}
	affected, err := u.customers.Update(ctx, id, upd)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// Delete removes a customer.
func (u *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domainErrors.ErrNotFound
	}
	affected, err := u.customers.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// Search returns customers whose name or email contains query, case-insensitively.
func (u *CustomerUseCase) Search(ctx context.Context, query string) ([]model.Customer, error) {
	return u.customers.Search(ctx, query)
}

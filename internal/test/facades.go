package test

import (
	"context"

	"github.com/polkiloo/customerhub/internal/domain/model"
)

// CustomerFacadeStub provides controllable behaviour for customer endpoints.
type CustomerFacadeStub struct {
	CustomersFn func(context.Context) ([]model.Customer, error)
	CustomerFn  func(context.Context, int64) (*model.Customer, error)
	UpdateFn    func(context.Context, int64, model.CustomerUpdate) error
	DeleteFn    func(context.Context, int64) error
	SearchFn    func(context.Context, string) ([]model.Customer, error)
}

// Customers returns configured list or a single default customer.
func (s CustomerFacadeStub) Customers(ctx context.Context) ([]model.Customer, error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx)
	}
	return []model.Customer{{ID: 1, Name: "Ann", Email: "ann@example.com"}}, nil
}

// Customer returns configured customer or one with requested id.
func (s CustomerFacadeStub) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	if s.CustomerFn != nil {
		return s.CustomerFn(ctx, id)
	}
	return &model.Customer{ID: id, Name: "Ann", Email: "ann@example.com"}, nil
}

// UpdateCustomer executes configured update handler.
func (s CustomerFacadeStub) UpdateCustomer(ctx context.Context, id int64, upd model.CustomerUpdate) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, upd)
	}
	return nil
}

// DeleteCustomer executes configured delete handler.
func (s CustomerFacadeStub) DeleteCustomer(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// SearchCustomers returns configured search results or nothing.
func (s CustomerFacadeStub) SearchCustomers(ctx context.Context, query string) ([]model.Customer, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, query)
	}
	return []model.Customer{}, nil
}

// FacadeStub aggregates facade dependencies for HTTP layer tests.
type FacadeStub struct {
	AuthFacadeStub
	CustomerFacadeStub
}

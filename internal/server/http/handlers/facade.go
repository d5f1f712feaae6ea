package handlers

import (
	"context"

	"github.com/polkiloo/customerhub/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (model.Claims, error)
}

// CustomerFacade encapsulates customer operations exposed via HTTP.
type CustomerFacade interface {
	Customers(ctx context.Context) ([]model.Customer, error)
	Customer(ctx context.Context, id int64) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, upd model.CustomerUpdate) error
	DeleteCustomer(ctx context.Context, id int64) error
	SearchCustomers(ctx context.Context, query string) ([]model.Customer, error)
}

// Facade aggregates the full set of operations used across handlers.
type Facade interface {
	AuthFacade
	CustomerFacade
}

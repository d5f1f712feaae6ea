package app

import (
	"context"

	"github.com/polkiloo/customerhub/internal/domain/model"
	"github.com/polkiloo/customerhub/internal/usecase"
)

// Facade is the single entry point the transport layer talks to.
type Facade struct {
	auth      *usecase.AuthUseCase
	customers *usecase.CustomerUseCase
}

func NewFacade(auth *usecase.AuthUseCase, customers *usecase.CustomerUseCase) *Facade {
	return &Facade{auth: auth, customers: customers}
}

func (f *Facade) Register(ctx context.Context, name, email, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, name, email, password)
	return token, err
}

func (f *Facade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *Facade) ParseToken(token string) (model.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *Facade) Customers(ctx context.Context) ([]model.Customer, error) {
	return f.customers.List(ctx)
}

func (f *Facade) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	return f.customers.Get(ctx, id)
}

func (f *Facade) UpdateCustomer(ctx context.Context, id int64, upd model.CustomerUpdate) error {
	return f.customers.Update(ctx, id, upd)
}

func (f *Facade) DeleteCustomer(ctx context.Context, id int64) error {
	return f.customers.Delete(ctx, id)
}

func (f *Facade) SearchCustomers(ctx context.Context, query string) ([]model.Customer, error) {
	return f.customers.Search(ctx, query)
}

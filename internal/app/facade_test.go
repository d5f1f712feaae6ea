package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/customerhub/internal/domain/errors"
	"github.com/polkiloo/customerhub/internal/domain/model"
	testhelpers "github.com/polkiloo/customerhub/internal/test"
	"github.com/polkiloo/customerhub/internal/usecase"
)

func newFacade() (*Facade, *testhelpers.UserRepositoryStub, *testhelpers.CustomerRepositoryStub) {
	userRepo := testhelpers.NewUserRepositoryStub()
	authUC := usecase.NewAuthUseCase(userRepo, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	customerRepo := testhelpers.NewCustomerRepositoryStub(
		model.Customer{ID: 1, Name: "Ann", Email: "ann@acme.io"},
		model.Customer{ID: 2, Name: "Bob", Email: "bob@beta.io"},
	)
	customerUC := usecase.NewCustomerUseCase(customerRepo)

	return NewFacade(authUC, customerUC), userRepo, customerRepo
}

func TestFacadeAuth(t *testing.T) {
	facade, users, _ := newFacade()
	token, err := facade.Register(context.Background(), "User", "user@example.com", "passw")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token:user@example.com:User" {
		t.Fatalf("unexpected token %q", token)
	}

	stored, err := users.GetByEmail(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.Name != "User" {
		t.Fatalf("unexpected stored name %q", stored.Name)
	}

	token, err = facade.Authenticate(context.Background(), "user@example.com", "passw")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}

	claims, err := facade.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if claims.Email != "user@example.com" || claims.Name != "User" {
		t.Fatalf("unexpected claims %+v", claims)
	}

	if _, err := facade.Authenticate(context.Background(), "user@example.com", "wrong"); !errors.Is(err, domainErrors.ErrInvalidPassword) {
		t.Fatalf("expected invalid password, got %v", err)
	}
}

func TestFacadeCustomers(t *testing.T) {
	facade, _, repo := newFacade()
	ctx := context.Background()

	all, err := facade.Customers(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("expected two customers, got %v err=%v", all, err)
	}

	customer, err := facade.Customer(ctx, 2)
	if err != nil || customer.Name != "Bob" {
		t.Fatalf("unexpected customer %+v err=%v", customer, err)
	}

	name := "Robert"
	if err := facade.UpdateCustomer(ctx, 2, model.CustomerUpdate{Name: &name}); err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if repo.Customers[2].Name != "Robert" || repo.Customers[2].Email != "" {
		t.Fatalf("unexpected stored customer %+v", repo.Customers[2])
	}

	found, err := facade.SearchCustomers(ctx, "ROB")
	if err != nil || len(found) != 1 {
		t.Fatalf("expected one match, got %v err=%v", found, err)
	}

	if err := facade.DeleteCustomer(ctx, 2); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if err := facade.DeleteCustomer(ctx, 2); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
	if _, err := facade.Customer(ctx, 2); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

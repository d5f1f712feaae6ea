package repository

import (
	"context"

	"github.com/polkiloo/customerhub/internal/domain/model"
)

// CustomerRepository describes persistence operations with customers.
// Update and Delete report the number of affected rows.
type CustomerRepository interface {
	List(ctx context.Context) ([]model.Customer, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	Update(ctx context.Context, id int64, upd model.CustomerUpdate) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Search(ctx context.Context, query string) ([]model.Customer, error)
}

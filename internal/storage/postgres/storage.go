package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/customerhub/internal/domain/errors"
	"github.com/polkiloo/customerhub/internal/domain/model"
	"github.com/polkiloo/customerhub/internal/domain/repository"
)

const uniqueViolation = "23505"

// pgxPool is the subset of *pgxpool.Pool used by the storage.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

var _ repository.Factory = (*Storage)(nil)

type userRepository struct {
	storage *Storage
}

type customerRepository struct {
	storage *Storage
}

// New connects to the database, verifies it is reachable and bootstraps the schema.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.HealthCheck(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("database ready", slog.String("host", cfg.ConnConfig.Host))
	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{storage: s}
}

// initSchema creates missing tables. Existing customers data is left untouched.
func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS customers (
            id BIGSERIAL PRIMARY KEY,
            name TEXT,
            email TEXT,
            phone TEXT,
            company TEXT
        )`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`
	u := model.User{Name: name, Email: email, PasswordHash: passwordHash}
	err := r.storage.pool.QueryRow(ctx, query, name, email, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, created_at FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}

// --- CustomerRepository implementation ---

const customerColumns = `id, COALESCE(name, ''), COALESCE(email, ''), COALESCE(phone, ''), COALESCE(company, '')`

func (r *customerRepository) List(ctx context.Context) ([]model.Customer, error) {
	const query = `SELECT ` + customerColumns + ` FROM customers ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return scanCustomers(rows)
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	const query = `SELECT ` + customerColumns + ` FROM customers WHERE id=$1`
	var c model.Customer
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("select customer: %w", err)
	}
	return &c, nil
}

func (r *customerRepository) Update(ctx context.Context, id int64, upd model.CustomerUpdate) (int64, error) {
	const query = `UPDATE customers SET name=$1, email=$2, phone=$3, company=$4 WHERE id=$5`
	tag, err := r.storage.pool.Exec(ctx, query, upd.Name, upd.Email, upd.Phone, upd.Company, id)
	if err != nil {
		return 0, fmt.Errorf("update customer: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *customerRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM customers WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("delete customer: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *customerRepository) Search(ctx context.Context, query string) ([]model.Customer, error) {
	const stmt = `SELECT ` + customerColumns + ` FROM customers
                  WHERE COALESCE(name, '') ILIKE $1 ESCAPE '\'
                     OR COALESCE(email, '') ILIKE $1 ESCAPE '\'
                  ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, stmt, containsPattern(query))
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	return scanCustomers(rows)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns free text into an ILIKE pattern matching it as a literal substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func scanCustomers(rows pgx.Rows) ([]model.Customer, error) {
	defer rows.Close()

	result := make([]model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

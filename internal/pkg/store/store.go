package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/ougirez/coalportal/internal/domain"
)

// Pool is the part of pgxpool.Pool the store needs.
type Pool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Store supplies the company dataset backing the directory.
type Store interface {
	ListCompanyRecords(ctx context.Context) ([]*domain.CompanyRecord, error)
}

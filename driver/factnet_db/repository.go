package factnet_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Pool is the subset of pgxpool.Pool the repository needs. pgxmock's pool
// interface satisfies it, which is what the driver tests stand in.
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type FactnetDBRepository struct {
	pool Pool
}

func NewFactnetDBRepository(pool Pool) *FactnetDBRepository {
	return &FactnetDBRepository{pool: pool}
}

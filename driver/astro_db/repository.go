package astro_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBIface is the subset of pgxpool.Pool the repository uses, kept as an
// interface so tests can substitute pgxmock.
type DBIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// AstroDBRepository owns all SQL against the cosmowatch database.
type AstroDBRepository struct {
	pool DBIface
}

func NewAstroDBRepository(pool *pgxpool.Pool) *AstroDBRepository {
	return &AstroDBRepository{pool: pool}
}

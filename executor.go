package dbpager

import (
	"context"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Executor runs a query and materializes its result rows.
type Executor interface {
	Execute(ctx context.Context, query *gorm.DB) ([]Row, error)
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(ctx context.Context, query *gorm.DB) ([]Row, error)

// Execute - implements Executor.
func (f ExecutorFunc) Execute(ctx context.Context, query *gorm.DB) ([]Row, error) {
	return f(ctx, query)
}

type connExecutor struct {
	pool gorm.ConnPool
}

// NewExecutor returns an Executor that runs queries on pool. pool may be a
// *sql.DB, *sql.Tx, *sql.Conn or any other gorm.ConnPool, for example a read
// replica. With a nil pool queries run on their own connection.
func NewExecutor(pool gorm.ConnPool) Executor {
	return &connExecutor{pool: pool}
}

// Execute - implements Executor. Errors of the underlying connection are
// returned as-is.
func (e *connExecutor) Execute(ctx context.Context, query *gorm.DB) ([]Row, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// Session with a context copies the statement, so the pool swap below
	// stays local to this execution.
	tx := query.Session(&gorm.Session{Context: ctx})
	if e.pool != nil {
		tx.Statement.ConnPool = e.pool
	}

	var rows []map[string]any
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	return lo.Map(rows, func(row map[string]any, _ int) Row {
		return Row(row)
	}), nil
}

var _ Executor = (*connExecutor)(nil)

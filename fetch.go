package dbpager

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FetchPage executes base with LIMIT itemCountPerPage OFFSET offset and
// returns the resulting rows. base is not modified. An empty page is an empty
// slice, not an error. A nil base or executor yields an error matching
// ErrConfiguration.
func FetchPage(
	ctx context.Context,
	base *gorm.DB,
	executor Executor,
	offset int,
	itemCountPerPage int,
) ([]Row, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, errNilQuery)
	}

	if lo.IsNil(executor) {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, errNilExecutor)
	}

	if offset < 0 || itemCountPerPage <= 0 {
		return nil, fmt.Errorf("%w: offset=%d itemCountPerPage=%d", ErrInvalidPageBounds, offset, itemCountPerPage)
	}

	return executor.Execute(ctx, pageQuery(base, offset, itemCountPerPage))
}

func pageQuery(base *gorm.DB, offset int, itemCountPerPage int) *gorm.DB {
	tx := cloneQuery(base).Limit(itemCountPerPage)

	// Offset(0) merges with an offset inherited from base instead of clearing
	// it, so the clause is replaced as a whole.
	tx.Statement.Clauses["LIMIT"] = clause.Clause{
		Expression: clause.Limit{Limit: &itemCountPerPage, Offset: offset},
	}

	return tx
}

package dbpager

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// SelectConfig holds the dependencies of a SelectAdapter.
type SelectConfig struct {
	// Query is the base query of the full, unpaginated result set.
	Query *gorm.DB `validate:"required"`
	// Executor runs page and count queries. Required.
	Executor Executor `validate:"-"`
	// CountQuery replaces the derived count query when set. Use it for
	// GROUP BY, DISTINCT and other queries a plain COUNT(*) cannot count.
	CountQuery *gorm.DB
	// RowCountColumn is the column holding the row count in the count query
	// result. Defaults to RowCountColumnName.
	RowCountColumn string `validate:"required,sql_identifier"`
	// Logger receives debug traces. Defaults to a no-op logger.
	Logger *zerolog.Logger `validate:"-"`
}

func NewSelectConfig(query *gorm.DB, executor Executor) *SelectConfig {
	return &SelectConfig{
		Query:    query,
		Executor: executor,
	}
}

// WithCountQuery sets a count query that is used verbatim.
func (c *SelectConfig) WithCountQuery(countQuery *gorm.DB) *SelectConfig {
	if c == nil {
		c = new(SelectConfig)
	}

	c.CountQuery = countQuery

	return c
}

// WithRowCountColumn overrides the row count column name.
func (c *SelectConfig) WithRowCountColumn(column string) *SelectConfig {
	if c == nil {
		c = new(SelectConfig)
	}

	c.RowCountColumn = column

	return c
}

// WithLogger sets the logger for debug traces.
func (c *SelectConfig) WithLogger(logger zerolog.Logger) *SelectConfig {
	if c == nil {
		c = new(SelectConfig)
	}

	c.Logger = &logger

	return c
}

func (c SelectConfig) withDefaults() SelectConfig {
	if c.RowCountColumn == "" {
		c.RowCountColumn = RowCountColumnName
	}

	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}

	return c
}

// SelectAdapter paginates an arbitrary GORM query.
//
// The adapter is request scoped and must not be shared between goroutines:
// the lazily derived count query is stored without synchronization.
type SelectAdapter struct {
	query          *gorm.DB
	executor       Executor
	countQuery     *gorm.DB
	rowCountColumn string
	logger         zerolog.Logger
}

// NewSelectAdapter validates cfg and builds a SelectAdapter. Returns an error
// matching ErrConfiguration when Query or Executor is missing or the row count
// column is not a plain identifier.
func NewSelectAdapter(cfg *SelectConfig) (*SelectAdapter, error) {
	const name = "select adapter"

	if cfg == nil {
		return nil, &ConfigurationError{Adapter: name, Err: errNilConfig}
	}

	c := cfg.withDefaults()
	if err := validateConfig(name, c); err != nil {
		return nil, err
	}

	if err := requireDependencies(name, dependency{value: c.Executor, err: errNilExecutor}); err != nil {
		return nil, err
	}

	return &SelectAdapter{
		query:          c.Query,
		executor:       c.Executor,
		countQuery:     c.CountQuery,
		rowCountColumn: c.RowCountColumn,
		logger:         *c.Logger,
	}, nil
}

// Count - implements Adapter. The count query is derived once; the count
// itself is fetched on every call since the table may change between pages.
func (a *SelectAdapter) Count(ctx context.Context) (int64, error) {
	started := time.Now()

	rows, err := a.executor.Execute(ctx, a.CountQuery())
	if err != nil {
		return 0, err
	}

	count, err := ExtractRowCount(lo.FirstOrEmpty(rows), a.rowCountColumn)
	if err != nil {
		return 0, err
	}

	a.logger.Debug().
		Int64("count", count).
		Dur("elapsed", time.Since(started)).
		Msg("row count fetched")

	return count, nil
}

// GetItems - implements Adapter.
func (a *SelectAdapter) GetItems(ctx context.Context, offset, itemCountPerPage int) ([]Row, error) {
	started := time.Now()

	rows, err := FetchPage(ctx, a.query, a.executor, offset, itemCountPerPage)
	if err != nil {
		return nil, err
	}

	a.logger.Debug().
		Int("offset", offset).
		Int("limit", itemCountPerPage).
		Int("rows", len(rows)).
		Dur("elapsed", time.Since(started)).
		Msg("page fetched")

	return rows, nil
}

// Query returns the base query.
func (a *SelectAdapter) Query() *gorm.DB {
	return a.query
}

// RowCountColumn returns the column the row count is read from.
func (a *SelectAdapter) RowCountColumn() string {
	return a.rowCountColumn
}

// CountQuery returns the count query, deriving it from the base query on the
// first call. Later calls return the same *gorm.DB.
func (a *SelectAdapter) CountQuery() *gorm.DB {
	if a.countQuery != nil {
		return a.countQuery
	}

	a.countQuery = BuildCountQuery(a.query, a.rowCountColumn)

	if e := a.logger.Debug(); e.Enabled() {
		e.Str("sql", a.countQuery.ToSQL(func(tx *gorm.DB) *gorm.DB {
			return tx.Find(&[]map[string]any{})
		})).Msg("count query derived")
	}

	return a.countQuery
}

// QuerySet is a snapshot of the queries an adapter runs.
type QuerySet struct {
	Select *gorm.DB
	// CountSelect is nil until the count query has been supplied or derived.
	CountSelect *gorm.DB
}

// Queries returns the base query and the current count query.
func (a *SelectAdapter) Queries() QuerySet {
	return QuerySet{
		Select:      a.query,
		CountSelect: a.countQuery,
	}
}

package dbpager

import (
	"slices"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type condition struct {
	query any
	args  []any
}

// TableGatewayConfig holds the dependencies of a TableGatewayAdapter.
//
// When Query is set it is paginated as-is and the Where, Order, Group and
// Having settings are ignored. Otherwise the base query is built from
// Gateway.Select().
type TableGatewayConfig struct {
	Gateway        TableGateway `validate:"-"`
	Query          *gorm.DB
	CountQuery     *gorm.DB
	RowCountColumn string `validate:"required,sql_identifier"`
	// Executor defaults to running queries on the gateway connection.
	Executor Executor        `validate:"-"`
	Group    string          `validate:"omitempty,sql_identifier"`
	Order    Orderings       `validate:"-"`
	Logger   *zerolog.Logger `validate:"-"`

	where  []condition
	having []condition
}

func NewTableGatewayConfig(gateway TableGateway) *TableGatewayConfig {
	return &TableGatewayConfig{
		Gateway: gateway,
	}
}

// WithQuery sets an explicit base query.
func (c *TableGatewayConfig) WithQuery(query *gorm.DB) *TableGatewayConfig {
	if c == nil {
		c = new(TableGatewayConfig)
	}

	c.Query = query

	return c
}

// WithCountQuery sets a count query that is used verbatim.
func (c *TableGatewayConfig) WithCountQuery(countQuery *gorm.DB) *TableGatewayConfig {
	if c == nil {
		c = new(TableGatewayConfig)
	}

	c.CountQuery = countQuery

	return c
}

// WithRowCountColumn overrides the row count column name.
func (c *TableGatewayConfig) WithRowCountColumn(column string) *TableGatewayConfig {
	if c == nil {
		c = new(TableGatewayConfig)
	}

	c.RowCountColumn = column

	return c
}

// WithExecutor overrides the executor, e.g. to read from a replica.
func (c *TableGatewayConfig) WithExecutor(executor Executor) *TableGatewayConfig {
	if c == nil {
		c = new(TableGatewayConfig)
	}

	c.Executor = executor

	return c
}

// WithWhere appends a condition. Arguments follow gorm.DB.Where.
func (c *TableGatewayConfig) WithWhere(query any, args ...any) *TableGatewayConfig {
	if c == nil {
		c = new(TableGatewayConfig)
	}

	c.where = append(c.where, condition{query: query, args: args})

	return c
}

// WithHaving appends a HAVING condition. Arguments follow gorm.DB.Having.
func (c *TableGatewayConfig) WithHaving(query any, args ...any) *TableGatewayConfig {
	if c == nil {
		c = new(TableGatewayConfig)
	}

	c.having = append(c.having, condition{query: query, args: args})

	return c
}

// WithGroup sets the GROUP BY column.
//
// IMPORTANT:
// The derived COUNT(*) counts rows before grouping. Pair it with
// WithCountQuery.
func (c *TableGatewayConfig) WithGroup(column string) *TableGatewayConfig {
	if c == nil {
		c = new(TableGatewayConfig)
	}

	c.Group = column

	return c
}

// WithOrder appends orderings, replacing a previous ordering of the same
// column.
func (c *TableGatewayConfig) WithOrder(orderBy ...OrderBy) *TableGatewayConfig {
	if c == nil {
		c = new(TableGatewayConfig)
	}

	for _, o := range orderBy {
		c.Order = slices.DeleteFunc(c.Order, func(processed OrderBy) bool {
			return processed.Column == o.Column
		})
		c.Order = append(c.Order, o)
	}

	return c
}

// WithLogger sets the logger for debug traces.
func (c *TableGatewayConfig) WithLogger(logger zerolog.Logger) *TableGatewayConfig {
	if c == nil {
		c = new(TableGatewayConfig)
	}

	c.Logger = &logger

	return c
}

func (c TableGatewayConfig) withDefaults() TableGatewayConfig {
	if c.RowCountColumn == "" {
		c.RowCountColumn = RowCountColumnName
	}

	if c.Executor == nil {
		c.Executor = NewExecutor(nil)
	}

	return c
}

func (c TableGatewayConfig) baseQuery() *gorm.DB {
	if c.Query != nil {
		return c.Query
	}

	tx := c.Gateway.Select()
	for _, w := range c.where {
		tx = tx.Where(w.query, w.args...)
	}

	if c.Group != "" {
		tx = tx.Group(c.Group)
	}

	for _, h := range c.having {
		tx = tx.Having(h.query, h.args...)
	}

	return c.Order.Apply(tx)
}

// TableGatewayAdapter paginates the rows of a TableGateway. It behaves like
// SelectAdapter over the query built from the gateway.
type TableGatewayAdapter struct {
	*SelectAdapter

	gateway TableGateway
}

// NewTableGatewayAdapter validates cfg and builds a TableGatewayAdapter.
// Returns an error matching ErrConfiguration when Gateway is missing or an
// identifier or ordering is malformed.
func NewTableGatewayAdapter(cfg *TableGatewayConfig) (*TableGatewayAdapter, error) {
	const name = "table gateway adapter"

	if cfg == nil {
		return nil, &ConfigurationError{Adapter: name, Err: errNilConfig}
	}

	c := cfg.withDefaults()
	if err := validateConfig(name, c); err != nil {
		return nil, err
	}

	err := requireDependencies(name,
		dependency{value: c.Gateway, err: errNilGateway},
		dependency{value: c.Executor, err: errNilExecutor},
	)
	if err != nil {
		return nil, err
	}

	if err := c.Order.validate(); err != nil {
		return nil, &ConfigurationError{Adapter: name, Err: err}
	}

	selectAdapter, err := NewSelectAdapter(&SelectConfig{
		Query:          c.baseQuery(),
		Executor:       c.Executor,
		CountQuery:     c.CountQuery,
		RowCountColumn: c.RowCountColumn,
		Logger:         c.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &TableGatewayAdapter{
		SelectAdapter: selectAdapter,
		gateway:       c.Gateway,
	}, nil
}

// Gateway returns the table gateway the adapter was built from.
func (a *TableGatewayAdapter) Gateway() TableGateway {
	return a.gateway
}

package dbpager

import (
	"context"

	"gorm.io/gorm"
)

// ModelAdapter pages an Adapter and hydrates the rows of every page into T.
type ModelAdapter[T any] struct {
	adapter  Adapter
	hydrator *Hydrator[T]
}

func NewModelAdapter[T any](adapter Adapter, hydrator *Hydrator[T]) (*ModelAdapter[T], error) {
	err := requireDependencies("model adapter",
		dependency{value: adapter, err: errNilAdapter},
		dependency{value: hydrator, err: errNilHydrator},
	)
	if err != nil {
		return nil, err
	}

	return &ModelAdapter[T]{
		adapter:  adapter,
		hydrator: hydrator,
	}, nil
}

// NewTableGatewayModelAdapter builds a TableGatewayAdapter whose pages are
// hydrated into T. Without a gateway in cfg the table of T is used.
// A nil cfg is the default configuration.
//
// Usage:
//
//	users, err := dbpager.NewTableGatewayModelAdapter[User](db, nil)
func NewTableGatewayModelAdapter[T any](db *gorm.DB, cfg *TableGatewayConfig) (*ModelAdapter[T], error) {
	const name = "model adapter"

	hydrator, err := NewHydrator[T](db)
	if err != nil {
		return nil, &ConfigurationError{Adapter: name, Err: err}
	}

	var c TableGatewayConfig
	if cfg != nil {
		c = *cfg
	}

	if c.Gateway == nil {
		c.Gateway = NewTableGateway(db, hydrator.Table())
	}

	adapter, err := NewTableGatewayAdapter(&c)
	if err != nil {
		return nil, err
	}

	return NewModelAdapter(adapter, hydrator)
}

// Count - delegates to the wrapped Adapter.
func (a *ModelAdapter[T]) Count(ctx context.Context) (int64, error) {
	return a.adapter.Count(ctx)
}

// GetItems returns at most itemCountPerPage models starting at offset.
func (a *ModelAdapter[T]) GetItems(ctx context.Context, offset, itemCountPerPage int) ([]T, error) {
	rows, err := a.adapter.GetItems(ctx, offset, itemCountPerPage)
	if err != nil {
		return nil, err
	}

	return a.hydrator.Hydrate(ctx, rows)
}

// Rows returns the wrapped Adapter, e.g. to build a Paginator.
func (a *ModelAdapter[T]) Rows() Adapter {
	return a.adapter
}

// Hydrator returns the hydrator of T.
func (a *ModelAdapter[T]) Hydrator() *Hydrator[T] {
	return a.hydrator
}

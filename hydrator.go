package dbpager

import (
	"context"
	"fmt"
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Hydrator fills values of a GORM model from result rows. Columns are matched
// to fields by column name, then by field name, and converted with the field
// setters GORM uses when scanning. Columns without a matching readable field
// are ignored.
type Hydrator[T any] struct {
	schema *schema.Schema
}

// NewHydrator parses the schema of T with the naming strategy of db.
// T must be a struct type.
func NewHydrator[T any](db *gorm.DB) (*Hydrator[T], error) {
	if db == nil {
		return nil, errNilDB
	}

	if typ := reflect.TypeOf((*T)(nil)).Elem(); typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot hydrate %s: model must be a struct", typ)
	}

	sch, err := parseModel(db, new(T))
	if err != nil {
		return nil, err
	}

	return &Hydrator[T]{schema: sch}, nil
}

// Table returns the table name of T.
func (h *Hydrator[T]) Table() string {
	return h.schema.Table
}

// Hydrate converts rows into models, preserving order.
func (h *Hydrator[T]) Hydrate(ctx context.Context, rows []Row) ([]T, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	items := make([]T, len(rows))
	for i, row := range rows {
		item := reflect.ValueOf(&items[i]).Elem()

		for column, value := range row {
			field := h.schema.LookUpField(column)
			if field == nil || field.DBName == "" || !field.Readable || field.Set == nil {
				continue
			}

			if err := field.Set(ctx, item, value); err != nil {
				return nil, fmt.Errorf("cannot hydrate column '%s' of row %d into %s.%s: %w", column, i, h.schema.Name, field.Name, err)
			}
		}
	}

	return items, nil
}

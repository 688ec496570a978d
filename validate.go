package dbpager

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

var _validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// A *gorm.DB is only checked for presence. Descending into it would walk
	// the DB <-> Statement reference cycle.
	v.RegisterCustomTypeFunc(func(reflect.Value) any { return true }, gorm.DB{})

	// Row count aliases and GROUP BY columns are interpolated into SQL as-is.
	err := v.RegisterValidation("sql_identifier", func(fl validator.FieldLevel) bool {
		return isColumnName(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}

	return v
}

func validateConfig(adapter string, cfg any) error {
	if err := _validate.Struct(cfg); err != nil {
		return &ConfigurationError{Adapter: adapter, Err: err}
	}

	return nil
}

var (
	errNilConfig   = errors.New("config is nil")
	errNilQuery    = errors.New("query is required")
	errNilExecutor = errors.New("executor is required")
	errNilGateway  = errors.New("table gateway is required")
	errNilAdapter  = errors.New("adapter is required")
	errNilHydrator = errors.New("hydrator is required")
	errNilDB       = errors.New("db is required")
)

// dependency is an interface-typed config field. These are checked for nil
// only: the validator would otherwise walk the implementation's fields.
type dependency struct {
	value any
	err   error
}

func requireDependencies(adapter string, deps ...dependency) error {
	for _, dep := range deps {
		if lo.IsNil(dep.value) {
			return &ConfigurationError{Adapter: adapter, Err: dep.err}
		}
	}

	return nil
}

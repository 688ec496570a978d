package dbpager

import (
	"context"

	"gorm.io/gorm"
)

// statementRunner is implemented by the migrators of the dialects built on
// gorm.io/gorm/migrator (mysql, postgres, sqlite, sqlserver).
type statementRunner interface {
	RunWithValue(value any, fc func(*gorm.Statement) error) error
}

// cloneQuery returns a copy of base that owns its statement. Chain methods
// called on the copy do not touch base. Pending scopes are applied to the
// copy, so the clauses they add can be dropped or replaced before execution.
func cloneQuery(base *gorm.DB) *gorm.DB {
	ctx := base.Statement.Context
	if ctx == nil {
		ctx = context.Background()
	}

	tx := applyScopes(base.Session(&gorm.Session{Context: ctx}))

	// A statement that was executed before keeps its rendered SQL.
	tx.Statement.SQL.Reset()
	tx.Statement.Vars = nil

	return tx
}

// applyScopes runs the scopes pending on tx without executing the query.
// GORM only applies scopes on execution or when building a migrator; the
// migrator hands back the scoped connection through RunWithValue.
// Dialects without such a migrator keep their scopes pending.
func applyScopes(tx *gorm.DB) *gorm.DB {
	runner, ok := tx.Migrator().(statementRunner)
	if !ok {
		return tx
	}

	scoped := tx
	_ = runner.RunWithValue(tx.Statement.Table, func(stmt *gorm.Statement) error {
		scoped = stmt.DB
		return nil
	})

	return scoped.Session(&gorm.Session{Context: tx.Statement.Context})
}

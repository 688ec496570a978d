package dbpager

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// TableGateway gives access to a single table. Select returns a fresh query
// over the whole table on every call.
type TableGateway interface {
	Table() string
	Select() *gorm.DB
}

// GORMTableGateway is a TableGateway over a GORM connection.
type GORMTableGateway struct {
	db    *gorm.DB
	table string
}

func NewTableGateway(db *gorm.DB, table string) *GORMTableGateway {
	return &GORMTableGateway{
		db:    db,
		table: table,
	}
}

// NewModelTableGateway resolves the table name of model with the naming
// strategy of db.
//
// Usage:
//
//	gateway, err := dbpager.NewModelTableGateway(db, &User{})
func NewModelTableGateway(db *gorm.DB, model any) (*GORMTableGateway, error) {
	sch, err := parseModel(db, model)
	if err != nil {
		return nil, err
	}

	return NewTableGateway(db, sch.Table), nil
}

func parseModel(db *gorm.DB, model any) (*schema.Schema, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return nil, fmt.Errorf("cannot resolve table name of %T: %w", model, err)
	}

	return stmt.Schema, nil
}

// Table - implements TableGateway.
func (g *GORMTableGateway) Table() string {
	return g.table
}

// Select - implements TableGateway. Conditions chained on the gateway
// connection are not inherited.
func (g *GORMTableGateway) Select() *gorm.DB {
	return g.db.Session(&gorm.Session{NewDB: true}).Table(g.table)
}

var _ TableGateway = (*GORMTableGateway)(nil)

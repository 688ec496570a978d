package dbpager

import (
	"strings"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type gormMockFn func() (string, *gorm.DB, sqlmock.Sqlmock, error)

var _gormMockFnList = []gormMockFn{
	newGORMMySQLMock,
	newGORMPostgresMock,
}

func newGORMMySQLMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return "", nil, nil, err
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return "", nil, nil, err
	}

	return "mysql", db, mock, nil
}

func newGORMPostgresMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return "", nil, nil, err
	}

	dialector := postgres.New(postgres.Config{
		Conn: mockDB,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return "", nil, nil, err
	}

	return "postgres", db, mock, nil
}

// countColumnFor returns the name a dialect reports for an unquoted COUNT(*)
// alias: PostgreSQL folds unquoted identifiers to lower case.
func countColumnFor(dialect string, column string) string {
	if dialect == "postgres" {
		return strings.ToLower(column)
	}

	return column
}

// taggedExecutor and taggedGateway carry validation tags of their own that
// adapter constructors must leave alone.
type taggedExecutor struct {
	Executor
	Name string `validate:"required"`
}

type taggedGateway struct {
	TableGateway
	Name string `validate:"required"`
}

package dbpager

import (
	"fmt"

	"gorm.io/gorm"
)

// RowCountColumnName is the alias of the COUNT(*) expression in derived
// count queries.
const RowCountColumnName = "C"

// BuildCountQuery derives a count query from base. The derived query selects
// a single "COUNT(*) AS <column>" expression and drops ORDER BY, LIMIT and
// OFFSET, so it counts the full result set. base is not modified.
//
// IMPORTANT:
// The derivation is naive for GROUP BY and DISTINCT queries, where it counts
// something other than the number of result rows. Supply an explicit count
// query to the adapter in those cases.
func BuildCountQuery(base *gorm.DB, column string) *gorm.DB {
	tx := cloneQuery(base).Select(countExpression(column))
	tx.Statement.Omits = nil

	// ORDER BY is meaningless for a count and may reference dropped columns.
	// GORM keeps OFFSET inside the LIMIT clause.
	delete(tx.Statement.Clauses, "ORDER BY")
	delete(tx.Statement.Clauses, "LIMIT")

	return tx.Session(&gorm.Session{})
}

func countExpression(column string) string {
	return fmt.Sprintf("COUNT(*) AS %s", column)
}

package dbpager

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Direction defines the sort direction of a paginated query.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

func (o Direction) Valid() bool {
	return o == DirectionASC || o == DirectionDESC
}

type (
	Orderings []OrderBy
	OrderBy   struct {
		Column    string
		Direction Direction
	}

	ColumnAlias = string

	// ColumnMapping maps external column aliases to fully qualified column names.
	// Use it when bare column names could cause an "ambiguous column name" error.
	// Key is an external alias, value is an internal column name.
	ColumnMapping = map[ColumnAlias]string
)

var _availableColumnNameSymbols = append([]rune("_.'`\""), lo.AlphanumericCharset...)

// isColumnName guards identifiers that end up in raw SQL.
func isColumnName(s string) bool {
	return lo.Every(_availableColumnNameSymbols, []rune(s))
}

func (o OrderBy) validate() error {
	if !o.Direction.Valid() {
		return fmt.Errorf("invalid ordering direction '%s'", o.Direction)
	}

	if o.Column == "" || !isColumnName(o.Column) {
		return fmt.Errorf("ordering column name contains forbidden symbols '%s'", o.Column)
	}

	return nil
}

// ToSQL converts Orderings to "<column_1> <direction_1>, <column_2> <direction_2>".
//
// Example: for [{"a", "ASC"}, {"b", "DESC"}] returns "a ASC, b DESC".
func (o Orderings) ToSQL() string {
	return strings.Join(lo.Map(o, func(ordering OrderBy, _ int) string {
		return fmt.Sprintf("%s %s", ordering.Column, ordering.Direction)
	}), ", ")
}

// Apply adds the ORDER BY clause to a gorm query. Empty orderings leave the
// query untouched.
func (o Orderings) Apply(db *gorm.DB) *gorm.DB {
	if len(o) == 0 {
		return db
	}

	return db.Order(o.ToSQL())
}

func (o Orderings) validate() error {
	for _, ordering := range o {
		if err := ordering.validate(); err != nil {
			return err
		}
	}

	return nil
}

// ParseSort builds Orderings from a list of strings in the format
// "column asc|desc". Column aliases are resolved via ColumnMapping.
// Returns an error naming the closest known alias if an alias is not found.
func ParseSort(stringsOrderings []string, columnMapping ColumnMapping) (Orderings, error) {
	ret := make(Orderings, 0, len(stringsOrderings))
	aliases := lo.Keys(columnMapping)

	for _, stringOrdering := range stringsOrderings {
		fields := strings.Fields(stringOrdering)
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid ordering string format '%s'", stringOrdering)
		}

		columnAlias := fields[0]
		columnName := columnMapping[columnAlias]
		if columnName == "" {
			return nil, fmt.Errorf("invalid column alias '%s'. closest: '%s'", columnAlias, closestAlias(columnAlias, aliases))
		}

		orderBy := OrderBy{
			Column:    columnName,
			Direction: Direction(strings.ToUpper(fields[1])),
		}
		if err := orderBy.validate(); err != nil {
			return nil, err
		}

		ret = append(ret, orderBy)
	}

	return ret, nil
}

func closestAlias(input ColumnAlias, dataSet []ColumnAlias) ColumnAlias {
	minDist := math.MaxInt
	closest := ""

	for _, dataSetAlias := range dataSet {
		dist := levenshtein([]rune(dataSetAlias), []rune(input))
		if dist < minDist || (dist == minDist && dataSetAlias < closest) {
			minDist = dist
			closest = dataSetAlias
		}
	}

	return closest
}

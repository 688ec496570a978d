package dbpager

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Row is a single result row keyed by column name. Column sets differ per
// query, so cell values stay dynamically typed as returned by the driver.
type Row map[string]any

// Columns returns the row column names in lexical order.
func (r Row) Columns() []string {
	columns := lo.Keys(r)
	slices.Sort(columns)

	return columns
}

// Lookup finds a cell by column name. An exact match wins; otherwise the
// first column whose lower-cased name equals the lower-cased column is used.
// Some platforms fold unquoted identifiers (PostgreSQL returns "c" for "C").
func (r Row) Lookup(column string) (any, bool) {
	if v, ok := r[column]; ok {
		return v, true
	}

	lowered := strings.ToLower(column)
	for _, key := range r.Columns() {
		if strings.ToLower(key) == lowered {
			return r[key], true
		}
	}

	return nil, false
}

// ExtractRowCount reads the row count from a count query result row.
// A missing column is an error, never a zero count.
func ExtractRowCount(row Row, column string) (int64, error) {
	value, ok := row.Lookup(column)
	if !ok {
		return 0, &MissingRowCountColumnError{
			Column:  column,
			Columns: row.Columns(),
		}
	}

	count, err := toInt64(value)
	if err != nil {
		return 0, fmt.Errorf("cannot read row count column '%s': %w", column, err)
	}

	return count, nil
}

// toInt64 converts a COUNT(*) cell into int64. Drivers disagree on the type:
// sqlite and pgx return int64, MySQL may return []byte, some return float64.
func toInt64(value any) (int64, error) {
	switch v := value.(type) {
	case nil:
		return 0, fmt.Errorf("value is NULL")
	case []byte:
		return parseCount(string(v))
	case string:
		return parseCount(v)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", u)
		}

		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
			return 0, fmt.Errorf("value %v is not an integral count", f)
		}

		return int64(f), nil
	default:
		return 0, fmt.Errorf("unsupported value type %T", value)
	}
}

func parseCount(s string) (int64, error) {
	count, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("value '%s' is not an integer: %w", s, err)
	}

	return count, nil
}

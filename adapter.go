package dbpager

import "context"

// Adapter is the contract a Paginator consumes: the total number of items of
// the unpaginated result set and a window of rows from it.
type Adapter interface {
	// Count returns the total number of rows. It queries the database on
	// every call.
	Count(ctx context.Context) (int64, error)
	// GetItems returns at most itemCountPerPage rows starting at offset.
	GetItems(ctx context.Context, offset, itemCountPerPage int) ([]Row, error)
}

var (
	_ Adapter = (*SelectAdapter)(nil)
	_ Adapter = (*TableGatewayAdapter)(nil)
)

package dbpager

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceAdapter struct {
	rows     []Row
	countErr error
	itemsErr error
	calls    []int
}

func newSliceAdapter(n int) *sliceAdapter {
	return &sliceAdapter{
		rows: lo.Times(n, func(i int) Row {
			return Row{"id": i + 1}
		}),
	}
}

func (a *sliceAdapter) Count(context.Context) (int64, error) {
	if a.countErr != nil {
		return 0, a.countErr
	}

	return int64(len(a.rows)), nil
}

func (a *sliceAdapter) GetItems(_ context.Context, offset, itemCountPerPage int) ([]Row, error) {
	if a.itemsErr != nil {
		return nil, a.itemsErr
	}

	a.calls = append(a.calls, offset)
	if offset >= len(a.rows) {
		return []Row{}, nil
	}

	return a.rows[offset:min(offset+itemCountPerPage, len(a.rows))], nil
}

func Test_Paginator_PageCount(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		perPage int
		want    int
	}{
		{"empty dataset", 0, 10, 0},
		{"single partial page", 3, 10, 1},
		{"exact pages", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"default page size", 25, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaginator(newSliceAdapter(tt.rows)).WithItemCountPerPage(tt.perPage)

			got, err := p.PageCount(context.Background())
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_Paginator_ItemsByPage(t *testing.T) {
	adapter := newSliceAdapter(7)
	p := NewPaginator(adapter).WithItemCountPerPage(3)

	items, err := p.ItemsByPage(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, []Row{{"id": 7}}, items)

	items, err = p.ItemsByPage(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, items, 3)

	require.Equal(t, []int{6, 0}, adapter.calls)
}

func Test_Paginator_Page(t *testing.T) {
	tests := []struct {
		name           string
		rows           int
		req            PageRequest
		expectedLen    int
		expectedLimit  int
		expectedOffset int
		expectedNext   *OffsetToken
	}{
		{
			name:          "first page",
			rows:          5,
			req:           PageRequest{Limit: 2},
			expectedLen:   2,
			expectedLimit: 2,
			expectedNext:  NewOffsetToken(2),
		},
		{
			name:           "middle page",
			rows:           5,
			req:            PageRequest{Limit: 2, Token: NewOffsetToken(2)},
			expectedLen:    2,
			expectedLimit:  2,
			expectedOffset: 2,
			expectedNext:   NewOffsetToken(4),
		},
		{
			name:           "last page",
			rows:           5,
			req:            PageRequest{Limit: 2, Token: NewOffsetToken(4)},
			expectedLen:    1,
			expectedLimit:  2,
			expectedOffset: 4,
			expectedNext:   nil,
		},
		{
			name:          "exactly one page",
			rows:          2,
			req:           PageRequest{Limit: 2},
			expectedLen:   2,
			expectedLimit: 2,
			expectedNext:  nil,
		},
		{
			name:          "paginator default limit",
			rows:          15,
			req:           PageRequest{},
			expectedLen:   DefaultItemCountPerPage,
			expectedLimit: DefaultItemCountPerPage,
			expectedNext:  NewOffsetToken(DefaultItemCountPerPage),
		},
		{
			name:           "past the end",
			rows:           3,
			req:            PageRequest{Limit: 2, Token: NewOffsetToken(10)},
			expectedLen:    0,
			expectedLimit:  2,
			expectedOffset: 10,
			expectedNext:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := newSliceAdapter(tt.rows)

			res, err := NewPaginator(adapter).Page(context.Background(), tt.req)
			require.NoError(t, err)
			require.Len(t, res.Items, tt.expectedLen)
			require.EqualValues(t, tt.rows, res.Total)
			require.Equal(t, tt.expectedLimit, res.AppliedLimit)
			require.Equal(t, []int{tt.expectedOffset}, adapter.calls)

			if tt.expectedNext == nil {
				require.Nil(t, res.NextPageToken)
			} else {
				require.NotNil(t, res.NextPageToken)
				require.Equal(t, tt.expectedNext.GetOffset(), res.NextPageToken.GetOffset())
			}
		})
	}
}

func Test_Paginator_Errors(t *testing.T) {
	errBoom := errors.New("boom")

	_, err := NewPaginator(&sliceAdapter{countErr: errBoom}).Page(context.Background(), PageRequest{})
	require.ErrorIs(t, err, errBoom)

	_, err = NewPaginator(&sliceAdapter{itemsErr: errBoom}).Page(context.Background(), PageRequest{})
	require.ErrorIs(t, err, errBoom)

	_, err = NewPaginator(nil).TotalItemCount(context.Background())
	require.Error(t, err)

	_, err = (*Paginator)(nil).ItemsByPage(context.Background(), 1)
	require.Error(t, err)
}

func Test_RawPageRequest_Decode(t *testing.T) {
	var raw RawPageRequest
	require.NoError(t, json.Unmarshal([]byte(`{"limit":500,"startToken":"`+NewOffsetToken(40).String()+`"}`), &raw))

	req, err := raw.Decode()
	require.NoError(t, err)
	require.Equal(t, MaxItemCountPerPage, req.Limit)
	require.Equal(t, 40, req.Token.GetOffset())

	_, err = RawPageRequest{StartToken: "%%%"}.Decode()
	require.Error(t, err)
}

func Test_Paginator_SelectAdapter(t *testing.T) {
	for _, sqlMockFn := range _gormMockFnList {
		dialect, db, dbMock, err := sqlMockFn()
		t.Run(dialect, func(t *testing.T) {
			require.NoError(t, err)

			dbMock.ExpectQuery(_usersCountQuery).WithArgs("lol").
				WillReturnRows(sqlmock.NewRows([]string{countColumnFor(dialect, "C")}).AddRow(13))
			dbMock.ExpectQuery(_usersPageQuery).WithArgs("lol").
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3).AddRow(4))

			adapter := newUsersSelectAdapter(t, db, nil)
			res, err := NewPaginator(adapter).Page(context.Background(), PageRequest{Limit: 10, Token: NewOffsetToken(2)})
			require.NoError(t, err)
			require.EqualValues(t, 13, res.Total)
			require.Len(t, res.Items, 2)
			require.Equal(t, 4, res.NextPageToken.GetOffset())

			assert.NoError(t, dbMock.ExpectationsWereMet())
		})
	}
}

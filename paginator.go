package dbpager

import (
	"context"
	"fmt"
)

// RawPageRequest is intended for API payloads. For proper code generation, inline it:
//
//	type MyFilter struct {
//	    Paging RawPageRequest `json:",inline"`
//	}
type RawPageRequest struct {
	// Limit - maximum number of records to return in the response.
	Limit int `json:"limit"`
	// StartToken - token obtained via OffsetToken.String().
	// If empty, the first page with Limit records is returned.
	StartToken string `json:"startToken"`
}

// Decode normalizes Limit and validates StartToken.
func (r RawPageRequest) Decode() (PageRequest, error) {
	token, err := DecodeOffsetToken(r.StartToken)
	if err != nil {
		return PageRequest{}, err
	}

	return PageRequest{
		Limit: NormalizeItemCountPerPage(r.Limit),
		Token: token,
	}, nil
}

// PageRequest points at a window of the dataset.
type PageRequest struct {
	// Limit is the page size. Zero means the paginator default.
	Limit int
	// Token is the start position. Nil means the first page.
	Token *OffsetToken
}

// PageResult is a page of rows with the information to request the next one.
type PageResult struct {
	// Items result rows.
	Items []Row
	// Total number of rows in the dataset.
	Total int64
	// AppliedLimit effective limit used for the query.
	AppliedLimit int
	// NextPageToken token for the next page, nil on the last page.
	NextPageToken *OffsetToken
}

// Paginator splits the rows of an Adapter into numbered pages.
type Paginator struct {
	adapter          Adapter
	itemCountPerPage int
}

func NewPaginator(adapter Adapter) *Paginator {
	return &Paginator{
		adapter:          adapter,
		itemCountPerPage: DefaultItemCountPerPage,
	}
}

// WithItemCountPerPage sets the page size. NormalizeItemCountPerPage is applied.
func (p *Paginator) WithItemCountPerPage(itemCountPerPage int) *Paginator {
	if p == nil {
		p = NewPaginator(nil)
	}

	p.itemCountPerPage = NormalizeItemCountPerPage(itemCountPerPage)

	return p
}

// GetItemCountPerPage returns the page size.
func (p *Paginator) GetItemCountPerPage() int {
	if p == nil {
		return DefaultItemCountPerPage
	}

	return p.itemCountPerPage
}

// TotalItemCount returns the number of rows reported by the adapter.
func (p *Paginator) TotalItemCount(ctx context.Context) (int64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}

	return p.adapter.Count(ctx)
}

// PageCount returns the number of pages. An empty dataset has zero pages.
func (p *Paginator) PageCount(ctx context.Context) (int, error) {
	total, err := p.TotalItemCount(ctx)
	if err != nil {
		return 0, err
	}

	perPage := int64(p.GetItemCountPerPage())

	return int((total + perPage - 1) / perPage), nil
}

// ItemsByPage returns the rows of a 1-based page. Page numbers below 1 are
// treated as the first page.
func (p *Paginator) ItemsByPage(ctx context.Context, pageNumber int) ([]Row, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	pageNumber = max(pageNumber, 1)
	perPage := p.GetItemCountPerPage()

	return p.adapter.GetItems(ctx, (pageNumber-1)*perPage, perPage)
}

// Page returns the window described by req together with the total row count
// and the token of the following window.
func (p *Paginator) Page(ctx context.Context, req PageRequest) (*PageResult, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	limit := p.GetItemCountPerPage()
	if req.Limit != 0 {
		limit = NormalizeItemCountPerPage(req.Limit)
	}
	offset := req.Token.GetOffset()

	total, err := p.adapter.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot count rows: %w", err)
	}

	items, err := p.adapter.GetItems(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch page at offset %d: %w", offset, err)
	}

	result := &PageResult{
		Items:        items,
		Total:        total,
		AppliedLimit: limit,
	}

	// An empty page ends the dataset even if rows were added since counting.
	if next := offset + len(items); len(items) > 0 && int64(next) < total {
		result.NextPageToken = NewOffsetToken(next)
	}

	return result, nil
}

func (p *Paginator) validate() error {
	if p == nil || p.adapter == nil {
		return errNilAdapter
	}

	return nil
}

package client

import (
	"context"
	"sync"
)

const defaultPerPage = 10

// ListView tracks the RFP list screen: page, search and status inputs plus
// the rows last fetched for them. Every input change issues exactly one
// fetch whose query parameters mirror the current state; responses that
// arrive after a newer fetch was issued are dropped.
type ListView struct {
	client *Client
	cache  *QueryCache

	mu      sync.Mutex
	page    int
	perPage int
	search  string
	status  string

	rows        []RFP
	total       int
	pages       int
	currentPage int
}

// NewListView constructs a ListView over the given client.
func NewListView(c *Client) *ListView {
	return &ListView{
		client:  c,
		cache:   NewQueryCache(),
		page:    1,
		perPage: defaultPerPage,
		status:  StatusAll,
	}
}

// SetPage moves to the given page (minimum 1) and refetches.
func (v *ListView) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	v.mu.Lock()
	v.page = page
	v.mu.Unlock()
	return v.reload(ctx)
}

// SetSearch updates the search input, resets to page 1 and refetches.
func (v *ListView) SetSearch(ctx context.Context, search string) error {
	v.mu.Lock()
	v.search = search
	v.page = 1
	v.mu.Unlock()
	return v.reload(ctx)
}

// SetStatus updates the status filter, resets to page 1 and refetches.
func (v *ListView) SetStatus(ctx context.Context, status string) error {
	v.mu.Lock()
	v.status = status
	v.page = 1
	v.mu.Unlock()
	return v.reload(ctx)
}

// Refresh refetches the current page without changing any input.
func (v *ListView) Refresh(ctx context.Context) error {
	return v.reload(ctx)
}

// Rows returns the rows last fetched.
func (v *ListView) Rows() []RFP {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]RFP, len(v.rows))
	copy(out, v.rows)
	return out
}

// Pagination returns the total match count, page count and current page.
func (v *ListView) Pagination() (total, pages, currentPage int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.total, v.pages, v.currentPage
}

func (v *ListView) reload(ctx context.Context) error {
	v.mu.Lock()
	params := ListParams{
		Page:    v.page,
		PerPage: v.perPage,
		Search:  v.search,
		Status:  v.status,
	}
	v.mu.Unlock()

	key := "/api/rfps?" + params.values().Encode()
	gen := v.cache.Begin(key)

	result, err := v.client.ListRFPs(ctx, params)
	if err != nil {
		return err
	}
	if !v.cache.Commit(key, gen, result) {
		// A newer fetch for the same key was issued; drop this response.
		return nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.page != params.Page || v.search != params.Search || v.status != params.Status {
		// State moved on while this response was in flight.
		return nil
	}
	v.rows = result.RFPs
	v.total = result.Total
	v.pages = result.Pages
	v.currentPage = result.CurrentPage
	return nil
}

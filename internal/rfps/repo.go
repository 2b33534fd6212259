package rfps

import "context"

// ListFilter narrows and pages the RFP collection.
type ListFilter struct {
	Page    int
	PerPage int
	Search  string
	Status  string
}

// Repo defines persistence operations for RFPs.
type Repo interface {
	Create(ctx context.Context, rfp RFP) error
	GetByID(ctx context.Context, id string) (RFP, error)
	Update(ctx context.Context, rfp RFP) error
	Delete(ctx context.Context, id string) error
	// List returns the filtered page ordered by updated_at descending and
	// the total match count before paging.
	List(ctx context.Context, filter ListFilter) ([]RFP, int, error)
	// ListRecent returns the most recently updated RFPs.
	ListRecent(ctx context.Context, limit int) ([]RFP, error)
	// ListAll returns every RFP; used for dashboard aggregates.
	ListAll(ctx context.Context) ([]RFP, error)
	// ReplaceAll deletes all RFPs and inserts the given set.
	ReplaceAll(ctx context.Context, rfps []RFP) error
}

package rfps

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo. It backs dev mode when
// no database is configured.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]RFP
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]RFP)}
}

// Create stores a new RFP.
func (r *MemoryRepo) Create(ctx context.Context, rfp RFP) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[rfp.ID] = rfp
	return nil
}

// GetByID returns an RFP by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (RFP, error) {
	if err := ctx.Err(); err != nil {
		return RFP{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rfp, ok := r.data[id]
	if !ok {
		return RFP{}, ErrNotFound
	}
	return rfp, nil
}

// Update overwrites an existing RFP.
func (r *MemoryRepo) Update(ctx context.Context, rfp RFP) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[rfp.ID]; !ok {
		return ErrNotFound
	}
	r.data[rfp.ID] = rfp
	return nil
}

// Delete removes an RFP by ID.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

// List returns the filtered page, newest-updated first, plus the total match count.
func (r *MemoryRepo) List(ctx context.Context, filter ListFilter) ([]RFP, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 10
	}

	matched := r.snapshot(func(rfp RFP) bool {
		return matchesSearch(rfp, filter.Search) && matchesStatus(rfp, filter.Status)
	})

	total := len(matched)
	start := (page - 1) * perPage
	if start >= total {
		return []RFP{}, total, nil
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

// ListRecent returns the most recently updated RFPs.
func (r *MemoryRepo) ListRecent(ctx context.Context, limit int) ([]RFP, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	all := r.snapshot(nil)
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// ListAll returns every RFP, newest-updated first.
func (r *MemoryRepo) ListAll(ctx context.Context) ([]RFP, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.snapshot(nil), nil
}

// ReplaceAll swaps the full collection for the given set.
func (r *MemoryRepo) ReplaceAll(ctx context.Context, rfps []RFP) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = make(map[string]RFP, len(rfps))
	for _, rfp := range rfps {
		r.data[rfp.ID] = rfp
	}
	return nil
}

func (r *MemoryRepo) snapshot(keep func(RFP) bool) []RFP {
	r.mu.RLock()
	out := make([]RFP, 0, len(r.data))
	for _, rfp := range r.data {
		if keep == nil || keep(rfp) {
			out = append(out, rfp)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

func matchesSearch(rfp RFP, search string) bool {
	search = strings.TrimSpace(search)
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, field := range []string{rfp.Name, rfp.AgencyName, rfp.AdvertiserClientName} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func matchesStatus(rfp RFP, status string) bool {
	if status == "" || status == StatusAll {
		return true
	}
	return rfp.Status == status
}

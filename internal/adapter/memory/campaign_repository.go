package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ad-console/internal/core/domain"
)

// CampaignRepository is the in-memory implementation of the campaign
// store. It mirrors the simulated backend the console ships with, so the
// service can run without a database. A single RWMutex is the
// serialization point for mutations; insertion order is preserved so
// listings stay stable across calls.
type CampaignRepository struct {
	mu    sync.RWMutex
	byID  map[string]domain.Campaign
	order []string

	now func() time.Time
}

// NewCampaignRepository returns an empty store.
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{
		byID: make(map[string]domain.Campaign),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (r *CampaignRepository) Create(_ context.Context, c domain.Campaign) (domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[c.CampaignID]; ok {
		return domain.Campaign{}, domain.ErrDuplicateID
	}
	ts := r.now()
	c.CreatedAt = ts
	c.UpdatedAt = ts
	r.byID[c.CampaignID] = c
	r.order = append(r.order, c.CampaignID)
	return c, nil
}

func (r *CampaignRepository) GetByID(_ context.Context, id string) (domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return domain.Campaign{}, domain.ErrNotFound
	}
	return c, nil
}

func (r *CampaignRepository) Update(_ context.Context, id string, c domain.Campaign) (domain.Campaign, error) {
	if !c.Status.Valid() {
		return domain.Campaign{}, &domain.ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("invalid value %q", string(c.Status)),
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.byID[id]
	if !ok {
		return domain.Campaign{}, domain.ErrNotFound
	}
	// identity fields and createdAt survive a full update
	c.CampaignID = prev.CampaignID
	c.AdvertiserID = prev.AdvertiserID
	c.CreatedAt = prev.CreatedAt
	c.UpdatedAt = r.now()
	r.byID[id] = c
	return c, nil
}

func (r *CampaignRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	for i, cid := range r.order {
		if cid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *CampaignRepository) SetStatus(_ context.Context, id string, status domain.Status) (domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return domain.Campaign{}, domain.ErrNotFound
	}
	if !c.Status.CanTransition(status) {
		return domain.Campaign{}, &domain.ValidationError{
			Field:  "status",
			Reason: "transition from " + string(c.Status) + " to " + string(status) + " is not allowed",
		}
	}
	c.Status = status
	c.UpdatedAt = r.now()
	r.byID[id] = c
	return c, nil
}

func (r *CampaignRepository) ListAll(_ context.Context) ([]domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Campaign, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *CampaignRepository) ListByAdvertiser(_ context.Context, advertiserID string) ([]domain.Campaign, error) {
	return r.filter(func(c domain.Campaign) bool { return c.AdvertiserID == advertiserID })
}

func (r *CampaignRepository) ListByStatus(_ context.Context, status domain.Status) ([]domain.Campaign, error) {
	return r.filter(func(c domain.Campaign) bool { return c.Status == status })
}

func (r *CampaignRepository) filter(keep func(domain.Campaign) bool) ([]domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Campaign, 0)
	for _, id := range r.order {
		if c := r.byID[id]; keep(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

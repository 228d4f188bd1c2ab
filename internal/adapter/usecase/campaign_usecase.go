package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"ad-console/internal/core/domain"
	"ad-console/internal/core/port"
)

const defaultCurrency = "USD"

// CampaignUseCase implements the management facade over a repository port.
// All business rules live here so memory and postgres backends behave
// identically: validation before any write, create-time defaults, the
// paged/unpaged listing asymmetry and on-demand statistics.
type CampaignUseCase struct {
	repo port.CampaignRepository
}

// NewCampaignUseCase creates the facade with the provided repository.
func NewCampaignUseCase(repo port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo}
}

// Create validates the campaign, fills create-time defaults and inserts it.
func (u *CampaignUseCase) Create(ctx context.Context, c domain.Campaign) (domain.Campaign, error) {
	if c.Budget.Currency == "" {
		c.Budget.Currency = defaultCurrency
	}
	if err := c.Validate(); err != nil {
		return domain.Campaign{}, err
	}
	for i := range c.Creatives {
		if c.Creatives[i].CreativeID == "" {
			c.Creatives[i].CreativeID = uuid.NewString()
		}
	}
	return u.repo.Create(ctx, c)
}

func (u *CampaignUseCase) GetByID(ctx context.Context, id string) (domain.Campaign, error) {
	return u.repo.GetByID(ctx, id)
}

// Update validates the replacement record and applies it. The repository
// preserves identity fields, so callers cannot move a campaign to another
// advertiser or rename its id.
func (u *CampaignUseCase) Update(ctx context.Context, id string, c domain.Campaign) (domain.Campaign, error) {
	// validate against the stored identity, not whatever the payload
	// claims; the payload's identity fields are ignored on write anyway
	prev, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Campaign{}, err
	}
	c.CampaignID = prev.CampaignID
	c.AdvertiserID = prev.AdvertiserID
	if c.Budget.Currency == "" {
		c.Budget.Currency = defaultCurrency
	}
	if err := c.Validate(); err != nil {
		return domain.Campaign{}, err
	}
	return u.repo.Update(ctx, id, c)
}

func (u *CampaignUseCase) Delete(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}

// SetStatus applies a lifecycle transition. The transition table is
// enforced inside the repository under its write lock so concurrent
// transitions on the same id cannot race past the guard.
func (u *CampaignUseCase) SetStatus(ctx context.Context, id string, status domain.Status) (domain.Campaign, error) {
	if !status.Valid() {
		return domain.Campaign{}, &domain.ValidationError{Field: "status", Reason: fmt.Sprintf("invalid value %q", string(status))}
	}
	return u.repo.SetStatus(ctx, id, status)
}

// List returns the page*size slice of the full set together with total
// counts. A page past the end yields an empty slice, not an error.
func (u *CampaignUseCase) List(ctx context.Context, page, size int) (port.CampaignPage, error) {
	if page < 0 {
		return port.CampaignPage{}, &domain.ValidationError{Field: "page", Reason: "must not be negative"}
	}
	if size < 1 {
		return port.CampaignPage{}, &domain.ValidationError{Field: "size", Reason: "must be at least 1"}
	}
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return port.CampaignPage{}, err
	}
	total := len(all)
	totalPages := total / size
	if total%size != 0 {
		totalPages++
	}
	// compare before multiplying: page and size come straight from the
	// query string and page*size can overflow
	content := all[:0]
	if page < totalPages {
		start := page * size
		end := start + size
		if end > total || end < start {
			end = total
		}
		content = all[start:end]
	}
	return port.CampaignPage{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Size:          size,
		Number:        page,
	}, nil
}

func (u *CampaignUseCase) ListByAdvertiser(ctx context.Context, advertiserID string) ([]domain.Campaign, error) {
	return u.repo.ListByAdvertiser(ctx, advertiserID)
}

func (u *CampaignUseCase) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Campaign, error) {
	if !status.Valid() {
		return nil, &domain.ValidationError{Field: "status", Reason: fmt.Sprintf("invalid value %q", string(status))}
	}
	return u.repo.ListByStatus(ctx, status)
}

// Search matches query as a case-insensitive substring of the campaign
// name, campaign id or advertiser id. The result is the full filtered
// set; search and pagination are deliberately not composed.
func (u *CampaignUseCase) Search(ctx context.Context, query string) ([]domain.Campaign, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	out := make([]domain.Campaign, 0)
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.CampaignID), q) ||
			strings.Contains(strings.ToLower(c.AdvertiserID), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Statistics counts campaigns per status in one pass over the current
// snapshot. Nothing is cached, so the result is consistent with the store
// at the instant of the call.
func (u *CampaignUseCase) Statistics(ctx context.Context) (port.Statistics, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return port.Statistics{}, err
	}
	stats := port.Statistics{Total: len(all)}
	for _, c := range all {
		switch c.Status {
		case domain.StatusActive:
			stats.Active++
		case domain.StatusPaused:
			stats.Paused++
		case domain.StatusCompleted:
			stats.Completed++
		}
	}
	return stats, nil
}

package port

import (
	"context"

	"ad-console/internal/core/domain"
)

// CampaignUseCase is the management facade consumed by the HTTP adapter.
// It maps the console's operation surface onto the repository, the
// lifecycle table and the read-only query helpers.
type CampaignUseCase interface {
	// Create validates the campaign, applies create-time defaults and
	// stores it. Duplicate ids fail with domain.ErrDuplicateID.
	Create(ctx context.Context, c domain.Campaign) (domain.Campaign, error)

	// GetByID fetches one campaign or fails with domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (domain.Campaign, error)

	// Update validates and fully replaces the mutable fields of an
	// existing campaign. Identity fields and createdAt are preserved.
	Update(ctx context.Context, id string, c domain.Campaign) (domain.Campaign, error)

	// Delete removes a campaign permanently.
	Delete(ctx context.Context, id string) error

	// SetStatus performs a lifecycle transition.
	SetStatus(ctx context.Context, id string, status domain.Status) (domain.Campaign, error)

	// List returns one page of the full campaign set. Pages are 0-based;
	// a page beyond the range yields an empty content slice.
	List(ctx context.Context, page, size int) (CampaignPage, error)

	// ListByAdvertiser and ListByStatus are exact-match filters. Filtered
	// listings are unpaged: the full result set is returned.
	ListByAdvertiser(ctx context.Context, advertiserID string) ([]domain.Campaign, error)
	ListByStatus(ctx context.Context, status domain.Status) ([]domain.Campaign, error)

	// Search returns every campaign whose name, campaign id or advertiser
	// id contains query as a case-insensitive substring. Unpaged.
	Search(ctx context.Context, query string) ([]domain.Campaign, error)

	// Statistics recomputes the per-status counts from the current store
	// contents. There is no cached state to go stale.
	Statistics(ctx context.Context) (Statistics, error)
}

// CampaignPage is the paged listing envelope. The field names follow the
// page shape the console already consumes.
type CampaignPage struct {
	Content       []domain.Campaign `json:"content"`
	TotalElements int               `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
	Size          int               `json:"size"`
	Number        int               `json:"number"`
}

// Statistics holds the per-status campaign counts. Total is always the
// sum of the three buckets.
type Statistics struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Paused    int `json:"paused"`
	Completed int `json:"completed"`
}

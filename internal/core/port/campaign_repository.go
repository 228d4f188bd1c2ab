package port

import (
	"context"

	"ad-console/internal/core/domain"
)

// CampaignRepository is the outbound port for campaign persistence. It is
// the sole owner of campaign identity and durable state. Implementations
// must serialize mutations on the same campaign id: create, update,
// delete and SetStatus are all-or-nothing with respect to concurrent
// writers. Reads operate over a consistent snapshot.
type CampaignRepository interface {
	// Create inserts a new campaign with server-assigned timestamps. It
	// returns domain.ErrDuplicateID when the campaign id is taken.
	Create(ctx context.Context, c domain.Campaign) (domain.Campaign, error)

	// GetByID returns the campaign or domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (domain.Campaign, error)

	// Update replaces every mutable field from c, preserving campaign id,
	// advertiser id and createdAt, and refreshes updatedAt. It returns
	// domain.ErrNotFound when the id is absent.
	Update(ctx context.Context, id string, c domain.Campaign) (domain.Campaign, error)

	// Delete permanently removes the campaign, or returns
	// domain.ErrNotFound.
	Delete(ctx context.Context, id string) error

	// SetStatus applies a lifecycle transition atomically, gated by the
	// domain transition table. A disallowed transition yields a
	// *domain.ValidationError; an unknown id yields domain.ErrNotFound.
	SetStatus(ctx context.Context, id string, status domain.Status) (domain.Campaign, error)

	// ListAll returns every campaign in stable stored order.
	ListAll(ctx context.Context) ([]domain.Campaign, error)

	// ListByAdvertiser returns campaigns owned by the advertiser.
	ListByAdvertiser(ctx context.Context, advertiserID string) ([]domain.Campaign, error)

	// ListByStatus returns campaigns in the given state.
	ListByStatus(ctx context.Context, status domain.Status) ([]domain.Campaign, error)
}

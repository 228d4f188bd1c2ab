package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"ad-console/internal/core/domain"
)

const uniqueViolation = "23505"

// campaignColumns is the scan order shared by every SELECT in this file.
const campaignColumns = `campaign_id, advertiser_id, name, status, budget, bidding,
	targeting, creatives, frequency_cap, schedule, created_by, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
// Nested value objects are stored as jsonb so the schema follows the wire
// shape; the primary key on campaign_id enforces uniqueness.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func (r *CampaignRepository) Create(ctx context.Context, c domain.Campaign) (domain.Campaign, error) {
	ts := time.Now().UTC()
	c.CreatedAt = ts
	c.UpdatedAt = ts

	budget, bidding, targeting, creatives, freqCap, schedule, err := marshalNested(c)
	if err != nil {
		return domain.Campaign{}, err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns
	(campaign_id, advertiser_id, name, status, budget, bidding, targeting, creatives, frequency_cap, schedule, created_by, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		c.CampaignID, c.AdvertiserID, c.Name, string(c.Status),
		budget, bidding, targeting, creatives, freqCap, schedule,
		c.CreatedBy, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.Campaign{}, domain.ErrDuplicateID
		}
		return domain.Campaign{}, err
	}
	return c, nil
}

func (r *CampaignRepository) GetByID(ctx context.Context, id string) (domain.Campaign, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE campaign_id = $1`, id)
	return scanCampaign(row)
}

func (r *CampaignRepository) Update(ctx context.Context, id string, c domain.Campaign) (domain.Campaign, error) {
	// the table CHECK constraint would reject this too, but as an opaque
	// pg error instead of the validation taxonomy
	if !c.Status.Valid() {
		return domain.Campaign{}, &domain.ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("invalid value %q", string(c.Status)),
		}
	}
	budget, bidding, targeting, creatives, freqCap, schedule, err := marshalNested(c)
	if err != nil {
		return domain.Campaign{}, err
	}
	// identity fields and created_at are simply not in the SET list
	row := r.pool.QueryRow(ctx, `UPDATE campaigns SET
	name = $2, status = $3, budget = $4, bidding = $5, targeting = $6,
	creatives = $7, frequency_cap = $8, schedule = $9, created_by = $10,
	updated_at = now()
WHERE campaign_id = $1
RETURNING `+campaignColumns,
		id, c.Name, string(c.Status), budget, bidding, targeting, creatives, freqCap, schedule, c.CreatedBy)
	return scanCampaign(row)
}

func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE campaign_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetStatus locks the row, checks the lifecycle table against the stored
// status and applies the new one. The row lock makes concurrent
// transitions on the same campaign serialize instead of racing the guard.
func (r *CampaignRepository) SetStatus(ctx context.Context, id string, status domain.Status) (c domain.Campaign, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.Campaign{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var current string
	err = tx.QueryRow(ctx, `SELECT status FROM campaigns WHERE campaign_id = $1 FOR UPDATE`, id).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Campaign{}, err
	}
	if !domain.Status(current).CanTransition(status) {
		err = &domain.ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("transition from %s to %s is not allowed", current, status),
		}
		return domain.Campaign{}, err
	}
	row := tx.QueryRow(ctx, `UPDATE campaigns SET status = $2, updated_at = now()
WHERE campaign_id = $1
RETURNING `+campaignColumns, id, string(status))
	return scanCampaign(row)
}

func (r *CampaignRepository) ListAll(ctx context.Context) ([]domain.Campaign, error) {
	return r.list(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY created_at, campaign_id`)
}

func (r *CampaignRepository) ListByAdvertiser(ctx context.Context, advertiserID string) ([]domain.Campaign, error) {
	return r.list(ctx, `SELECT `+campaignColumns+` FROM campaigns
WHERE advertiser_id = $1 ORDER BY created_at, campaign_id`, advertiserID)
}

func (r *CampaignRepository) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Campaign, error) {
	return r.list(ctx, `SELECT `+campaignColumns+` FROM campaigns
WHERE status = $1 ORDER BY created_at, campaign_id`, string(status))
}

func (r *CampaignRepository) list(ctx context.Context, query string, args ...any) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (domain.Campaign, error) {
	var (
		c        domain.Campaign
		status   string
		budget   []byte
		bidding  []byte
		tgt      []byte
		crs      []byte
		fc       []byte
		schedule []byte
	)
	err := row.Scan(&c.CampaignID, &c.AdvertiserID, &c.Name, &status,
		&budget, &bidding, &tgt, &crs, &fc, &schedule,
		&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Campaign{}, err
	}
	c.Status = domain.Status(status)
	if err = json.Unmarshal(budget, &c.Budget); err != nil {
		return domain.Campaign{}, err
	}
	if err = json.Unmarshal(bidding, &c.Bidding); err != nil {
		return domain.Campaign{}, err
	}
	if tgt != nil {
		if err = json.Unmarshal(tgt, &c.Targeting); err != nil {
			return domain.Campaign{}, err
		}
	}
	if crs != nil {
		if err = json.Unmarshal(crs, &c.Creatives); err != nil {
			return domain.Campaign{}, err
		}
	}
	if fc != nil {
		if err = json.Unmarshal(fc, &c.FrequencyCap); err != nil {
			return domain.Campaign{}, err
		}
	}
	if schedule != nil {
		if err = json.Unmarshal(schedule, &c.Schedule); err != nil {
			return domain.Campaign{}, err
		}
	}
	return c, nil
}

// marshalNested serializes the jsonb columns. Optional groups marshal to
// nil so the column stays NULL instead of holding "null".
func marshalNested(c domain.Campaign) (budget, bidding, targeting, creatives, freqCap, schedule []byte, err error) {
	if budget, err = json.Marshal(c.Budget); err != nil {
		return
	}
	if bidding, err = json.Marshal(c.Bidding); err != nil {
		return
	}
	if c.Targeting != nil {
		if targeting, err = json.Marshal(c.Targeting); err != nil {
			return
		}
	}
	if len(c.Creatives) > 0 {
		if creatives, err = json.Marshal(c.Creatives); err != nil {
			return
		}
	}
	if c.FrequencyCap != nil {
		if freqCap, err = json.Marshal(c.FrequencyCap); err != nil {
			return
		}
	}
	if c.Schedule != nil {
		if schedule, err = json.Marshal(c.Schedule); err != nil {
			return
		}
	}
	return
}

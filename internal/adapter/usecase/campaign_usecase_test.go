package usecase

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-console/internal/adapter/memory"
	"ad-console/internal/core/domain"
	"ad-console/internal/core/port"
)

func f(v float64) *float64 { return &v }

func newService(t *testing.T) *CampaignUseCase {
	t.Helper()
	return NewCampaignUseCase(memory.NewCampaignRepository())
}

func campaignFixture(id string) domain.Campaign {
	return domain.Campaign{
		CampaignID:   id,
		AdvertiserID: "A1",
		Name:         "Test",
		Status:       domain.StatusActive,
		Budget:       domain.Budget{TotalBudget: f(1000), DailyBudget: f(100), Currency: "USD"},
		Bidding:      domain.Bidding{BidStrategy: domain.BidStrategyCPC, MaxBid: f(0.5), BaseBid: f(0.3)},
	}
}

func TestCreateDefaultsCurrency(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	c := campaignFixture("C1")
	c.Budget.Currency = ""
	created, err := svc.Create(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, "USD", created.Budget.Currency)
}

func TestCreateAssignsCreativeIDs(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	c := campaignFixture("C1")
	c.Creatives = []domain.Creative{
		{Format: "banner", Width: 300, Height: 250},
		{CreativeID: "CR-EXISTING", Format: "video"},
	}
	created, err := svc.Create(ctx, c)
	require.NoError(t, err)
	assert.NotEmpty(t, created.Creatives[0].CreativeID)
	assert.Equal(t, "CR-EXISTING", created.Creatives[1].CreativeID)
}

func TestCreateRejectsInvalid(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	c := campaignFixture("C1")
	c.Bidding.BaseBid = f(0.9) // above maxBid
	_, err := svc.Create(ctx, c)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)

	// nothing was stored
	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
}

func TestUpdateIgnoresPayloadIdentity(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, campaignFixture("C1"))
	require.NoError(t, err)

	patch := campaignFixture("OTHER")
	patch.AdvertiserID = "A999"
	patch.Name = "Renamed"
	updated, err := svc.Update(ctx, "C1", patch)
	require.NoError(t, err)
	assert.Equal(t, "C1", updated.CampaignID)
	assert.Equal(t, "A1", updated.AdvertiserID)
	assert.Equal(t, "Renamed", updated.Name)

	_, err = svc.Update(ctx, "missing", patch)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, campaignFixture("C1"))
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, "C1", "archived")
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)

	got, err := svc.GetByID(ctx, "C1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, got.Status)
}

func TestPagination(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		_, err := svc.Create(ctx, campaignFixture(fmt.Sprintf("C%02d", i)))
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Content, 5)
	assert.Equal(t, 15, page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 10, page.Size)
	assert.Equal(t, 1, page.Number)

	// beyond the range: empty slice, not an error
	past, err := svc.List(ctx, 5, 10)
	require.NoError(t, err)
	assert.Empty(t, past.Content)
	assert.Equal(t, 15, past.TotalElements)
}

// concatenating all pages reproduces the full set exactly once each
func TestPaginationCoversAllElements(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	const total = 23
	for i := 0; i < total; i++ {
		_, err := svc.Create(ctx, campaignFixture(fmt.Sprintf("C%02d", i)))
		require.NoError(t, err)
	}

	for _, size := range []int{1, 4, 10, 23, 50} {
		seen := make(map[string]int)
		first, err := svc.List(ctx, 0, size)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, size*first.TotalPages, first.TotalElements)

		for p := 0; p < first.TotalPages; p++ {
			page, err := svc.List(ctx, p, size)
			require.NoError(t, err)
			for _, c := range page.Content {
				seen[c.CampaignID]++
			}
		}
		assert.Len(t, seen, total, "size %d", size)
		for id, n := range seen {
			assert.Equal(t, 1, n, "campaign %s seen %d times at size %d", id, n, size)
		}
	}
}

// extreme page/size values arrive straight from the query string; they
// must degrade to an empty page, never to an arithmetic wraparound
func TestPaginationExtremeValues(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, campaignFixture("C1"))
	require.NoError(t, err)

	page, err := svc.List(ctx, math.MaxInt, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Equal(t, 1, page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)

	page, err = svc.List(ctx, math.MaxInt, math.MaxInt)
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Equal(t, 1, page.TotalPages)

	page, err = svc.List(ctx, 0, math.MaxInt)
	require.NoError(t, err)
	assert.Len(t, page.Content, 1)
	assert.Equal(t, 1, page.TotalPages)

	// empty store: every page is empty and totalPages is zero
	empty := NewCampaignUseCase(memory.NewCampaignRepository())
	page, err = empty.List(ctx, math.MaxInt, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Equal(t, 0, page.TotalPages)
}

func TestPaginationRejectsBadInput(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	var vErr *domain.ValidationError
	_, err := svc.List(ctx, -1, 10)
	require.ErrorAs(t, err, &vErr)
	_, err = svc.List(ctx, 0, 0)
	require.ErrorAs(t, err, &vErr)
}

func TestSearch(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	c := campaignFixture("CAMP-7")
	c.Name = "Spring Sale"
	_, err := svc.Create(ctx, c)
	require.NoError(t, err)

	other := campaignFixture("X1")
	other.Name = "Winter Clearance"
	other.AdvertiserID = "BRAND-9"
	_, err = svc.Create(ctx, other)
	require.NoError(t, err)

	for _, q := range []string{"spring", "SALE", "ing sa"} {
		got, err := svc.Search(ctx, q)
		require.NoError(t, err)
		require.Len(t, got, 1, "query %q", q)
		assert.Equal(t, "CAMP-7", got[0].CampaignID)
	}

	// id and advertiser are searched too
	got, err := svc.Search(ctx, "camp-7")
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = svc.Search(ctx, "brand")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "X1", got[0].CampaignID)

	got, err = svc.Search(ctx, "xyz123")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListByStatusRejectsUnknownValue(t *testing.T) {
	svc := newService(t)

	_, err := svc.ListByStatus(context.Background(), "archived")
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestStatisticsLifecycleScenario(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, campaignFixture("C1"))
	require.NoError(t, err)

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, port.Statistics{Total: 1, Active: 1}, stats)

	_, err = svc.SetStatus(ctx, "C1", domain.StatusPaused)
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, "C1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaused, got.Status)

	stats, err = svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, port.Statistics{Total: 1, Paused: 1}, stats)

	require.NoError(t, svc.Delete(ctx, "C1"))

	_, err = svc.GetByID(ctx, "C1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	stats, err = svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, port.Statistics{}, stats)
}

func TestStatisticsTotalsAddUp(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	statuses := []domain.Status{
		domain.StatusActive, domain.StatusActive, domain.StatusPaused,
		domain.StatusCompleted, domain.StatusCompleted, domain.StatusCompleted,
	}
	for i, st := range statuses {
		c := campaignFixture(fmt.Sprintf("C%d", i))
		c.Status = st
		_, err := svc.Create(ctx, c)
		require.NoError(t, err)
	}

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, port.Statistics{Total: 6, Active: 2, Paused: 1, Completed: 3}, stats)
	assert.Equal(t, stats.Total, stats.Active+stats.Paused+stats.Completed)
}

package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"ad-console/internal/core/domain"
	"ad-console/internal/core/port"
)

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

// Seed inserts the demo campaign set through the repository port, so it
// works against any backend. Already-seeded campaigns are skipped.
func Seed(ctx context.Context, repo port.CampaignRepository) error {
	campaigns := []domain.Campaign{
		{
			CampaignID:   "CAMP001",
			AdvertiserID: "ADV001",
			Name:         "Spring Promotion",
			Status:       domain.StatusActive,
			Budget: domain.Budget{
				TotalBudget: f(10000), DailyBudget: f(500),
				SpentTotal: f(2500), SpentToday: f(150),
				Currency: "USD",
			},
			Bidding: domain.Bidding{BidStrategy: domain.BidStrategyCPM, MaxBid: f(10), BaseBid: f(5)},
			Targeting: &domain.Targeting{
				Geo:      &domain.GeoTargeting{IncludedCountries: []string{"US", "CA"}},
				Device:   &domain.DeviceTargeting{DeviceTypes: []int{1, 2}, OperatingSystems: []string{"iOS", "Android"}},
				Audience: &domain.AudienceTargeting{AgeRange: &domain.AgeRange{Min: 18, Max: 45}, Interests: []string{"shopping", "fashion"}},
				Time:     &domain.TimeTargeting{DaysOfWeek: []int{1, 2, 3, 4, 5}, HoursOfDay: []int{9, 12, 18, 21}},
			},
			Creatives: []domain.Creative{{
				CreativeID: uuid.NewString(),
				Format:     "banner", Width: 300, Height: 250,
				HTML:     `<div>Spring Sale!</div>`,
				ClickURL: "https://example.com/spring",
			}},
			FrequencyCap: &domain.FrequencyCap{ImpressionsPerUserPerDay: i(5), ImpressionsPerUserPerHour: i(2)},
			Schedule:     schedule(2024, time.March, 1, 2024, time.March, 31),
		},
		{
			CampaignID:   "CAMP002",
			AdvertiserID: "ADV002",
			Name:         "Summer Launch",
			Status:       domain.StatusPaused,
			Budget: domain.Budget{
				TotalBudget: f(15000), DailyBudget: f(750),
				SpentTotal: f(5000), SpentToday: f(0),
				Currency: "USD",
			},
			Bidding:  domain.Bidding{BidStrategy: domain.BidStrategyCPC, MaxBid: f(2), BaseBid: f(1)},
			Schedule: schedule(2024, time.June, 1, 2024, time.August, 31),
		},
		{
			CampaignID:   "CAMP003",
			AdvertiserID: "ADV001",
			Name:         "Holiday Mega Sale",
			Status:       domain.StatusCompleted,
			Budget: domain.Budget{
				TotalBudget: f(50000), DailyBudget: f(2000),
				SpentTotal: f(50000), SpentToday: f(0),
				Currency: "USD",
			},
			Bidding:  domain.Bidding{BidStrategy: domain.BidStrategyCPA, MaxBid: f(50), BaseBid: f(30)},
			Schedule: schedule(2023, time.November, 1, 2023, time.November, 15),
		},
	}

	for _, c := range campaigns {
		if _, err := repo.Create(ctx, c); err != nil {
			if errors.Is(err, domain.ErrDuplicateID) {
				continue
			}
			return err
		}
	}
	return nil
}

func schedule(sy int, sm time.Month, sd, ey int, em time.Month, ed int) *domain.Schedule {
	start := domain.NewDate(sy, sm, sd)
	end := domain.NewDate(ey, em, ed)
	return &domain.Schedule{StartDate: &start, EndDate: &end, Timezone: "UTC"}
}

package domain

import "time"

// Campaign is the root entity of the management console. CampaignID and
// AdvertiserID are assigned by the caller at create time and never change
// afterwards. The nested groups are partial structures assembled by the
// console form; cross-field rules are checked by Validate.
type Campaign struct {
	CampaignID   string        `json:"campaignId"`
	AdvertiserID string        `json:"advertiserId"`
	Name         string        `json:"name"`
	Status       Status        `json:"status"`
	Budget       Budget        `json:"budget"`
	Bidding      Bidding       `json:"bidding"`
	Targeting    *Targeting    `json:"targeting,omitempty"`
	Creatives    []Creative    `json:"creatives,omitempty"`
	FrequencyCap *FrequencyCap `json:"frequencyCap,omitempty"`
	Schedule     *Schedule     `json:"schedule,omitempty"`
	CreatedBy    string        `json:"createdBy,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// Budget describes spend limits and accumulated spend in the campaign
// currency. Amounts are optional; currency defaults to USD at create time.
type Budget struct {
	TotalBudget *float64 `json:"totalBudget,omitempty"`
	DailyBudget *float64 `json:"dailyBudget,omitempty"`
	SpentTotal  *float64 `json:"spentTotal,omitempty"`
	SpentToday  *float64 `json:"spentToday,omitempty"`
	Currency    string   `json:"currency"`
}

// BidStrategy enumerates the supported pricing models.
type BidStrategy string

const (
	BidStrategyCPM BidStrategy = "cpm"
	BidStrategyCPC BidStrategy = "cpc"
	BidStrategyCPA BidStrategy = "cpa"
)

func (s BidStrategy) Valid() bool {
	switch s {
	case BidStrategyCPM, BidStrategyCPC, BidStrategyCPA:
		return true
	}
	return false
}

type Bidding struct {
	BidStrategy BidStrategy `json:"bidStrategy"`
	MaxBid      *float64    `json:"maxBid,omitempty"`
	BaseBid     *float64    `json:"baseBid,omitempty"`
}

// Targeting is purely descriptive in the console; it is stored and handed
// downstream to the serving system untouched.
type Targeting struct {
	Geo      *GeoTargeting      `json:"geo,omitempty"`
	Device   *DeviceTargeting   `json:"device,omitempty"`
	Audience *AudienceTargeting `json:"audience,omitempty"`
	Time     *TimeTargeting     `json:"time,omitempty"`
}

type GeoTargeting struct {
	IncludedCountries []string `json:"includedCountries,omitempty"`
	ExcludedCountries []string `json:"excludedCountries,omitempty"`
	IncludedRegions   []string `json:"includedRegions,omitempty"`
	IncludedCities    []string `json:"includedCities,omitempty"`
}

type DeviceTargeting struct {
	DeviceTypes      []int    `json:"deviceTypes,omitempty"`
	OperatingSystems []string `json:"operatingSystems,omitempty"`
	Browsers         []string `json:"browsers,omitempty"`
}

type AudienceTargeting struct {
	AgeRange  *AgeRange `json:"ageRange,omitempty"`
	Genders   []string  `json:"genders,omitempty"`
	Interests []string  `json:"interests,omitempty"`
}

type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type TimeTargeting struct {
	DaysOfWeek []int `json:"daysOfWeek,omitempty"`
	HoursOfDay []int `json:"hoursOfDay,omitempty"`
}

// Creative is an opaque descriptor stored with the campaign. The console
// never renders or validates markup.
type Creative struct {
	CreativeID         string   `json:"creativeId"`
	Format             string   `json:"format,omitempty"`
	Width              int      `json:"width,omitempty"`
	Height             int      `json:"height,omitempty"`
	HTML               string   `json:"html,omitempty"`
	ClickURL           string   `json:"clickUrl,omitempty"`
	ImpressionTrackers []string `json:"impressionTrackers,omitempty"`
	ClickTrackers      []string `json:"clickTrackers,omitempty"`
}

type FrequencyCap struct {
	ImpressionsPerUserPerDay  *int `json:"impressionsPerUserPerDay,omitempty"`
	ImpressionsPerUserPerHour *int `json:"impressionsPerUserPerHour,omitempty"`
}

type Schedule struct {
	StartDate *Date  `json:"startDate,omitempty"`
	EndDate   *Date  `json:"endDate,omitempty"`
	Timezone  string `json:"timezone,omitempty"`
}

// Validate checks enum closures and the cross-field invariants of the
// campaign contract. It returns a *ValidationError on the first violation.
func (c Campaign) Validate() error {
	if c.CampaignID == "" {
		return validationf("campaignId", "is required")
	}
	if c.AdvertiserID == "" {
		return validationf("advertiserId", "is required")
	}
	if c.Name == "" {
		return validationf("name", "is required")
	}
	if !c.Status.Valid() {
		return validationf("status", "invalid value %q", string(c.Status))
	}
	if c.Bidding.BidStrategy != "" && !c.Bidding.BidStrategy.Valid() {
		return validationf("bidding.bidStrategy", "invalid value %q", string(c.Bidding.BidStrategy))
	}
	if b := c.Budget; b.TotalBudget != nil && b.DailyBudget != nil && *b.DailyBudget > *b.TotalBudget {
		return validationf("budget", "dailyBudget %v exceeds totalBudget %v", *b.DailyBudget, *b.TotalBudget)
	}
	if bd := c.Bidding; bd.MaxBid != nil && bd.BaseBid != nil && *bd.BaseBid > *bd.MaxBid {
		return validationf("bidding", "baseBid %v exceeds maxBid %v", *bd.BaseBid, *bd.MaxBid)
	}
	if s := c.Schedule; s != nil && s.StartDate != nil && s.EndDate != nil && s.EndDate.Before(s.StartDate.Time) {
		return validationf("schedule", "startDate %s is after endDate %s", s.StartDate, s.EndDate)
	}
	if t := c.Targeting; t != nil && t.Audience != nil && t.Audience.AgeRange != nil {
		if r := t.Audience.AgeRange; r.Min > r.Max {
			return validationf("targeting.audience.ageRange", "min %d exceeds max %d", r.Min, r.Max)
		}
	}
	return nil
}

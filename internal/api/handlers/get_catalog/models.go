package get_catalog

import "github.com/kaimb/booking-service/internal/domain"

// CatalogResponse is everything the booking form needs to render: price
// lists, bike types, schedule parameters, and the customer-facing policy.
type CatalogResponse struct {
	BusinessName string         `json:"businessName"`
	Tagline      string         `json:"tagline"`
	Currency     string         `json:"currency"`
	PolicyNote   string         `json:"policyNote"`
	Services     []PricedOption `json:"services"`
	Addons       []PricedOption `json:"addons"`
	TravelZones  []PricedOption `json:"travelZones"`
	BikeTypes    []string       `json:"bikeTypes"`
	Schedule     ScheduleInfo   `json:"schedule"`
}

// PricedOption is a selectable label with its price.
type PricedOption struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// ScheduleInfo exposes the booking-window parameters the date picker needs.
type ScheduleInfo struct {
	SlotMinutes        int `json:"slotMinutes"`
	MaxDaysAhead       int `json:"maxDaysAhead"`
	MinLeadTimeMinutes int `json:"minLeadTimeMinutes"`
}

// BuildCatalogResponse snapshots the compiled-in catalog and schedule.
func BuildCatalogResponse(schedule domain.WorkSchedule) *CatalogResponse {
	return &CatalogResponse{
		BusinessName: domain.BusinessName,
		Tagline:      domain.Tagline,
		Currency:     domain.Currency,
		PolicyNote:   domain.PolicyNote,
		Services:     toPricedOptions(domain.Services),
		Addons:       toPricedOptions(domain.Addons),
		TravelZones:  toPricedOptions(domain.TravelZones),
		BikeTypes:    domain.BikeTypes,
		Schedule: ScheduleInfo{
			SlotMinutes:        schedule.SlotMinutes,
			MaxDaysAhead:       schedule.MaxDaysAhead,
			MinLeadTimeMinutes: schedule.MinLeadTimeMinutes,
		},
	}
}

func toPricedOptions(options []domain.PriceOption) []PricedOption {
	result := make([]PricedOption, len(options))
	for i, opt := range options {
		result[i] = PricedOption{Name: opt.Name, Price: opt.Price}
	}
	return result
}

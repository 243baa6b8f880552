package domain

// Business identity shown to customers. Compiled-in: the business is a
// single operator and these change by redeploy, not at runtime.
const (
	BusinessName = "Kai MB Mechanic"
	Tagline      = "Mobile bike servicing & repairs — home, work, apartment."
	Currency     = "AUD"
	PolicyNote   = "Call-out included for included area. Parts are extra. You'll be contacted to confirm."
)

// AddonsNone is stored in the addons column when no add-on was selected.
const AddonsNone = "None"

// PriceOption is a customer-selectable labelled price. Labels include the
// price because they are displayed verbatim and stored verbatim on bookings.
type PriceOption struct {
	Name  string
	Price int
}

// Services are the bookable base services.
var Services = []PriceOption{
	{Name: "Safety Tune ($99)", Price: 99},
	{Name: "Full Service ($189)", Price: 189},
	{Name: "Family / 2 Bikes ($299)", Price: 299},
	{Name: "Family / 3 Bikes ($420)", Price: 420},
}

// Addons are optional extras summed on top of the base service.
var Addons = []PriceOption{
	{Name: "Tube install labour (+$35)", Price: 35},
	{Name: "Brake pads install labour (+$40)", Price: 40},
	{Name: "Chain install labour (+$40)", Price: 40},
	{Name: "Deep drivetrain clean (+$60)", Price: 60},
	{Name: "E-bike inspection (+$40)", Price: 40},
}

// TravelZones are the service-area tiers with their call-out fees.
var TravelZones = []PriceOption{
	{Name: "Included area (no travel fee)", Price: 0},
	{Name: "Outside area (+$20 travel fee)", Price: 20},
	{Name: "Farther area (+$40 travel fee)", Price: 40},
}

// BikeTypes are the options offered on the form; free entry is accepted.
var BikeTypes = []string{"Road", "MTB", "Hybrid", "E-bike", "Kids", "Other"}

// ServicePrice looks up the base price for a catalog service name.
func ServicePrice(name string) (int, bool) {
	return optionPrice(Services, name)
}

// AddonPrice looks up the price for a catalog add-on name.
func AddonPrice(name string) (int, bool) {
	return optionPrice(Addons, name)
}

// TravelZoneFee looks up the fee for a catalog travel zone name.
func TravelZoneFee(name string) (int, bool) {
	return optionPrice(TravelZones, name)
}

func optionPrice(options []PriceOption, name string) (int, bool) {
	for _, opt := range options {
		if opt.Name == name {
			return opt.Price, true
		}
	}
	return 0, false
}

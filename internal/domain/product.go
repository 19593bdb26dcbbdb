package domain

// Product is catalog data. It is supplied by the catalog provider and never
// mutated by the core; orders copy the price fields they need at creation.
type Product struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	RegularPrice int64  `json:"regularPrice"`
	OfferPrice   int64  `json:"offerPrice"`
	Image        string `json:"image"`
	Link         string `json:"link,omitempty"`
	Edition      string `json:"edition,omitempty"`
}

type DeliveryZone string

const (
	ZoneInside  DeliveryZone = "inside"
	ZoneOutside DeliveryZone = "outside"
	ZoneUnset   DeliveryZone = ""
)

// Label returns the customer-facing name of the zone.
func (z DeliveryZone) Label() string {
	switch z {
	case ZoneInside:
		return "Dhaka"
	case ZoneOutside:
		return "Outside Dhaka"
	default:
		return ""
	}
}

// Sizes is the enumerated set of orderable jersey sizes.
var Sizes = []string{"M", "L", "XL", "2XL"}

func ValidSize(s string) bool {
	for _, v := range Sizes {
		if s == v {
			return true
		}
	}
	return false
}

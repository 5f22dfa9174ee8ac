package types

// Location is a resolved point plus its human-readable address parts.
// It covers both user locations (device or address search) and restaurant
// reference locations.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	District  string  `json:"district"`
	City      string  `json:"city"`
}

// DeliveryAddress is the address block captured at checkout.
type DeliveryAddress struct {
	Title        string `json:"title"`
	FullAddress  string `json:"fullAddress" validate:"required"`
	District     string `json:"district" validate:"required"`
	City         string `json:"city" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Instructions string `json:"instructions"`
	ZipCode      string `json:"zipCode"`
}

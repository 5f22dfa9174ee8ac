package models

// RestaurantLocation is the static delivery-origin coordinate for a restaurant.
// Restaurants without a row here are excluded from distance ranking.
type RestaurantLocation struct {
	RestaurantID int64   `gorm:"column:restaurant_id;primaryKey" json:"restaurantId"`
	Latitude     float64 `gorm:"column:latitude;not null" json:"latitude"`
	Longitude    float64 `gorm:"column:longitude;not null" json:"longitude"`
	Address      string  `gorm:"column:address" json:"address"`
	District     string  `gorm:"column:district" json:"district"`
	City         string  `gorm:"column:city" json:"city"`
}

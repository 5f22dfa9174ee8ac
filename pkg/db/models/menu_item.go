package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/polattozlu/munch-gokhan/pkg/enums"
)

// MenuItem is a sellable dish belonging to exactly one restaurant.
type MenuItem struct {
	ID           int64              `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RestaurantID int64              `gorm:"column:restaurant_id;not null;index" json:"restaurantId"`
	Name         string             `gorm:"column:name;not null" json:"name"`
	Description  string             `gorm:"column:description" json:"description"`
	Price        decimal.Decimal    `gorm:"column:price;type:numeric(10,2);not null" json:"price"`
	Image        string             `gorm:"column:image" json:"image"`
	Category     enums.MenuCategory `gorm:"column:category;not null" json:"category"`
	IsAvailable  bool               `gorm:"column:is_available;not null;default:true" json:"isAvailable"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

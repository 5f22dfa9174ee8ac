package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Restaurant is the canonical storefront listing row.
type Restaurant struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name            string          `gorm:"column:name;not null" json:"name"`
	Cuisine         string          `gorm:"column:cuisine;not null" json:"cuisine"`
	Image           string          `gorm:"column:image" json:"image"`
	Rating          float64         `gorm:"column:rating;not null;default:0" json:"rating"`
	TotalReviews    int             `gorm:"column:total_reviews;not null;default:0" json:"totalReviews"`
	DeliveryTime    string          `gorm:"column:delivery_time;not null" json:"deliveryTime"`
	DeliveryFee     decimal.Decimal `gorm:"column:delivery_fee;type:numeric(10,2);not null" json:"deliveryFee"`
	Description     string          `gorm:"column:description" json:"description"`
	Address         string          `gorm:"column:address" json:"address"`
	Phone           string          `gorm:"column:phone" json:"phone"`
	IsActive        bool            `gorm:"column:is_active;not null;default:true" json:"isActive"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

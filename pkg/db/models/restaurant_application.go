package models

import (
	"time"

	"github.com/polattozlu/munch-gokhan/pkg/enums"
)

// RestaurantApplication is a partner-onboarding funnel entry.
type RestaurantApplication struct {
	ID             int64                   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RestaurantName string                  `gorm:"column:restaurant_name;not null" json:"restaurantName"`
	OwnerName      string                  `gorm:"column:owner_name;not null" json:"ownerName"`
	Phone          string                  `gorm:"column:phone;not null" json:"phone"`
	Email          string                  `gorm:"column:email;not null" json:"email"`
	Address        string                  `gorm:"column:address;not null" json:"address"`
	Cuisine        string                  `gorm:"column:cuisine;not null" json:"cuisine"`
	Description    string                  `gorm:"column:description" json:"description"`
	Status         enums.ApplicationStatus `gorm:"column:status;not null;default:'pending'" json:"status"`
	CreatedAt      time.Time               `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time               `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

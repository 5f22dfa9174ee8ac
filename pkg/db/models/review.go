package models

import "time"

// Review is a customer rating attached to a restaurant.
type Review struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RestaurantID int64     `gorm:"column:restaurant_id;not null;index" json:"restaurantId"`
	UserID       string    `gorm:"column:user_id;not null" json:"userId"`
	UserName     string    `gorm:"column:user_name;not null" json:"userName"`
	Rating       int       `gorm:"column:rating;not null" json:"rating"`
	Comment      string    `gorm:"column:comment" json:"comment"`
	Helpful      int       `gorm:"column:helpful;not null;default:0" json:"helpful"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"date"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/polattozlu/munch-gokhan/pkg/enums"
	"github.com/polattozlu/munch-gokhan/pkg/types"
)

// Order is a placed order snapshot. The ID carries the storefront's
// human-readable SIP-YYYYMMDD-nnnnnn format.
type Order struct {
	ID                string                `gorm:"column:id;primaryKey" json:"id"`
	UserID            string                `gorm:"column:user_id;not null;index" json:"userId"`
	RestaurantID      int64                 `gorm:"column:restaurant_id;not null" json:"restaurantId"`
	Items             []OrderItem           `gorm:"foreignKey:OrderID" json:"items"`
	Total             decimal.Decimal       `gorm:"column:total;type:numeric(10,2);not null" json:"total"`
	Status            enums.OrderStatus     `gorm:"column:status;not null" json:"status"`
	PaymentMethod     enums.PaymentMethod   `gorm:"column:payment_method;not null" json:"paymentMethod"`
	DeliveryAddress   types.DeliveryAddress `gorm:"column:delivery_address;type:jsonb;serializer:json" json:"deliveryAddress"`
	OrderDate         time.Time             `gorm:"column:order_date;not null" json:"orderDate"`
	EstimatedDelivery time.Time             `gorm:"column:estimated_delivery" json:"estimatedDelivery"`
	CreatedAt         time.Time             `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt         time.Time             `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// OrderItem is a priced line captured at placement time.
type OrderItem struct {
	ID         int64           `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	OrderID    string          `gorm:"column:order_id;not null;index" json:"-"`
	MenuItemID int64           `gorm:"column:menu_item_id;not null" json:"menuItemId"`
	Name       string          `gorm:"column:name;not null" json:"name"`
	Price      decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null" json:"price"`
	Quantity   int             `gorm:"column:quantity;not null" json:"quantity"`
}

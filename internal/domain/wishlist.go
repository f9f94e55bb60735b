package domain

import "time"

// WishlistItem links a user to a saved car, once per pair.
type WishlistItem struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_user_car_wishlist"`
	CarID     int64     `json:"car_id" gorm:"not null;uniqueIndex:idx_user_car_wishlist"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Car  *Car  `json:"car,omitempty" gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
}

func (WishlistItem) TableName() string { return "wishlist_items" }

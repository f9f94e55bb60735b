package domain

import "time"

type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_user_car_review"`
	CarID     int64     `json:"car_id" gorm:"not null;uniqueIndex:idx_user_car_review;index"`
	Rating    int       `json:"rating" gorm:"not null" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Car  *Car  `json:"car,omitempty" gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
}

func (Review) TableName() string { return "reviews" }

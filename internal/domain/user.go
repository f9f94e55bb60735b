package domain

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Role         UserRole  `json:"role" gorm:"type:varchar(20);default:customer"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

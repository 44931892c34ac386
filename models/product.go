package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Price       int       `gorm:"not null" json:"price"`
	Category    string    `gorm:"type:varchar(100);not null;index" json:"category"`
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

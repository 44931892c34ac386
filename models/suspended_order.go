package models

import "time"

// SuspendedOrder is a named cart snapshot set aside before payment. The
// snapshot is stored as a JSON blob so the row survives a restart without a
// join table; the repository fills Cart on the way out.
type SuspendedOrder struct {
	ID        string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string     `gorm:"type:varchar(100);not null" json:"name"`
	CartJSON  string     `gorm:"column:cart;type:text;not null" json:"-"`
	Cart      []CartLine `gorm:"-" json:"cart"`
	Timestamp time.Time  `gorm:"not null" json:"timestamp"`
}

package models

import "time"

// BaseModel is gorm.Model without soft deletes: every delete in this service
// removes the row, so unique indexes and cascades never see tombstones.
type BaseModel struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

package models

import "time"

type Idea struct {
	BaseModel

	StudentProfileID uint   `gorm:"not null;index"`
	Title            string `gorm:"size:255;not null"`
	Description      string `gorm:"type:text;not null"`
	Technology       string `gorm:"size:255;not null"`
	PostedAt         time.Time

	// Relationships
	StudentProfile StudentProfile `gorm:"foreignKey:StudentProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

package models

import "time"

type Internship struct {
	BaseModel

	CompanyProfileID uint    `gorm:"not null;index"`
	Title            string  `gorm:"size:255;not null"`
	Description      string  `gorm:"type:text;not null"`
	Technology       string  `gorm:"size:255;not null"`
	Stipend          float64 `gorm:"type:decimal(18,2);not null;default:0"`
	PostedAt         time.Time

	// Relationships
	Company      CompanyProfile `gorm:"foreignKey:CompanyProfileID"`
	Applications []Application  `gorm:"foreignKey:InternshipID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

package models

import (
	"time"

	"github.com/innovate-connect/innovate/internal/types"
)

type Application struct {
	BaseModel

	InternshipID     uint                    `gorm:"not null;uniqueIndex:idx_application_internship_student"`
	StudentProfileID uint                    `gorm:"not null;uniqueIndex:idx_application_internship_student;index"`
	Status           types.ApplicationStatus `gorm:"size:20;not null"`
	AppliedAt        time.Time

	// Relationships
	Internship     Internship     `gorm:"foreignKey:InternshipID"`
	StudentProfile StudentProfile `gorm:"foreignKey:StudentProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

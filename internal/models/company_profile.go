package models

type CompanyProfile struct {
	BaseModel

	AccountID   uint   `gorm:"not null;uniqueIndex"`
	CompanyName string `gorm:"size:255;not null"`
	Location    string `gorm:"size:255;not null"`
	Website     string `gorm:"size:512"`

	// Relationships
	Account     Account      `gorm:"foreignKey:AccountID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Internships []Internship `gorm:"foreignKey:CompanyProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

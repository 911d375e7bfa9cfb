package models

// ContactMessage is submitted from the public contact form and is not owned
// by any account.
type ContactMessage struct {
	BaseModel

	Name     string `gorm:"size:255;not null"`
	Email    string `gorm:"size:255;not null"`
	Message  string `gorm:"type:text;not null"`
	Reviewed bool   `gorm:"not null;default:false"`
}

package models

import "github.com/innovate-connect/innovate/internal/types"

// Account is the credential record. Email is stored lower-cased and trimmed;
// the unique index is what rejects concurrent duplicate registrations.
type Account struct {
	BaseModel

	Email        string     `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string     `gorm:"size:255;not null"`
	Role         types.Role `gorm:"size:20;not null;index"`
}

package models

type StudentResume struct {
	BaseModel

	StudentProfileID uint   `gorm:"not null;uniqueIndex"`
	FileName         string `gorm:"size:255;not null"`
	ContentType      string `gorm:"size:255;not null"`
	Data             []byte `gorm:"not null"`
}

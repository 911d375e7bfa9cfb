package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type StudentProfile struct {
	BaseModel

	AccountID    uint   `gorm:"not null;uniqueIndex"`
	FullName     string `gorm:"size:255;not null"`
	University   string `gorm:"size:255"`
	GitHubLink   string `gorm:"column:github_link;size:512"`
	LeetCodeLink string `gorm:"column:leetcode_link;size:512"`
	Bio          string `gorm:"type:text"`
	Location     string `gorm:"size:255"`
	Skills       datatypes.JSON

	// Relationships
	Account Account        `gorm:"foreignKey:AccountID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Resume  *StudentResume `gorm:"foreignKey:StudentProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (p *StudentProfile) SkillList() []string {
	var skills []string
	if len(p.Skills) == 0 {
		return []string{}
	}
	if err := json.Unmarshal(p.Skills, &skills); err != nil {
		return []string{}
	}
	return skills
}

func (p *StudentProfile) SetSkills(skills []string) {
	if skills == nil {
		skills = []string{}
	}
	data, _ := json.Marshal(skills)
	p.Skills = datatypes.JSON(data)
}

package types

import "time"

type AccountResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
}

type AdminAccountResponse struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	ProfileName string    `json:"profile_name"`
}

type StatsResponse struct {
	TotalStudents     int64 `json:"total_students"`
	TotalCompanies    int64 `json:"total_companies"`
	TotalIdeas        int64 `json:"total_ideas"`
	ActiveInternships int64 `json:"active_internships"`
}

type LeetCodeStats struct {
	Username     string `json:"username"`
	TotalSolved  int    `json:"total_solved"`
	EasySolved   int    `json:"easy_solved"`
	MediumSolved int    `json:"medium_solved"`
	HardSolved   int    `json:"hard_solved"`
	Ranking      int    `json:"ranking"`
}

type CompanySummary struct {
	ID          uint   `json:"id"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	Website     string `json:"website,omitempty"`
}

type InternshipResponse struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Technology  string          `json:"technology"`
	Stipend     float64         `json:"stipend"`
	PostedAt    time.Time       `json:"posted_at"`
	Company     *CompanySummary `json:"company,omitempty"`
}

type ResumeInfo struct {
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type StudentProfileResponse struct {
	ID           uint        `json:"id"`
	AccountID    uint        `json:"account_id"`
	Email        string      `json:"email,omitempty"`
	FullName     string      `json:"full_name"`
	University   string      `json:"university"`
	GitHubLink   string      `json:"github_link"`
	LeetCodeLink string      `json:"leetcode_link"`
	Bio          string      `json:"bio"`
	Location     string      `json:"location"`
	Skills       []string    `json:"skills"`
	Resume       *ResumeInfo `json:"resume,omitempty"`
}

type CompanyProfileResponse struct {
	ID          uint   `json:"id"`
	AccountID   uint   `json:"account_id"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	Website     string `json:"website"`
}

type ApplicationResponse struct {
	ID         uint                    `json:"id"`
	Status     ApplicationStatus       `json:"status"`
	AppliedAt  time.Time               `json:"applied_at"`
	Internship *InternshipResponse     `json:"internship,omitempty"`
	Student    *StudentProfileResponse `json:"student,omitempty"`
}

type IdeaResponse struct {
	ID          uint                    `json:"id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Technology  string                  `json:"technology"`
	PostedAt    time.Time               `json:"posted_at"`
	Student     *StudentProfileResponse `json:"student,omitempty"`
}

type ContactMessageResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Reviewed  bool      `json:"reviewed"`
	CreatedAt time.Time `json:"created_at"`
}

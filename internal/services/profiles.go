package services

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/innovate-connect/innovate/internal/errs"
	"github.com/innovate-connect/innovate/internal/models"
	"github.com/innovate-connect/innovate/internal/store"
	"github.com/innovate-connect/innovate/internal/types"
)

var resumeContentTypes = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

var (
	ErrResumeType  = errs.NewValidation("Only PDF and DOCX files are allowed")
	ErrResumeSize  = errs.NewValidation("File size exceeds the 5MB limit")
	ErrResumeEmpty = errs.NewValidation("No file uploaded")
)

type ProfileService struct {
	store *store.Store
}

func NewProfileService(st *store.Store) *ProfileService {
	return &ProfileService{store: st}
}

func (s *ProfileService) StudentProfile(ctx context.Context, accountID uint) (*models.StudentProfile, error) {
	return s.store.StudentProfileByAccount(ctx, accountID)
}

// PublicStudent is the profile view any authenticated user may open.
func (s *ProfileService) PublicStudent(ctx context.Context, studentProfileID uint) (*models.StudentProfile, error) {
	return s.store.StudentProfileByID(ctx, studentProfileID)
}

func (s *ProfileService) UpdateStudentProfile(ctx context.Context, accountID uint, fields StudentFields) (*models.StudentProfile, error) {
	if strings.TrimSpace(fields.FullName) == "" {
		return nil, errs.NewValidation("Full name is required")
	}

	profile, err := s.store.StudentProfileByAccount(ctx, accountID)

	if err != nil {
		return nil, err
	}

	profile.FullName = strings.TrimSpace(fields.FullName)
	profile.University = strings.TrimSpace(fields.University)
	profile.GitHubLink = strings.TrimSpace(fields.GitHubLink)
	profile.LeetCodeLink = strings.TrimSpace(fields.LeetCodeLink)
	profile.Bio = strings.TrimSpace(fields.Bio)
	profile.Location = strings.TrimSpace(fields.Location)
	profile.SetSkills(cleanSkills(fields.Skills))

	if err := s.store.UpdateStudentProfile(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *ProfileService) CompanyProfile(ctx context.Context, accountID uint) (*models.CompanyProfile, error) {
	return s.store.CompanyProfileByAccount(ctx, accountID)
}

func (s *ProfileService) UpdateCompanyProfile(ctx context.Context, accountID uint, fields CompanyFields) (*models.CompanyProfile, error) {
	if strings.TrimSpace(fields.CompanyName) == "" {
		return nil, errs.NewValidation("Company name is required")
	}

	profile, err := s.store.CompanyProfileByAccount(ctx, accountID)

	if err != nil {
		return nil, err
	}

	profile.CompanyName = strings.TrimSpace(fields.CompanyName)
	profile.Location = orDefault(fields.Location, profile.Location)
	profile.Website = strings.TrimSpace(fields.Website)

	if err := s.store.UpdateCompanyProfile(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// UploadResume stores a PDF or DOCX resume, replacing the previous one. The
// content type is derived from the extension, not from the client.
func (s *ProfileService) UploadResume(ctx context.Context, studentProfileID uint, fileName string, data []byte) (*models.StudentResume, error) {
	if len(data) == 0 {
		return nil, ErrResumeEmpty
	}

	if len(data) > types.MaxResumeSize {
		return nil, ErrResumeSize
	}

	name := filepath.Base(strings.TrimSpace(fileName))

	contentType, ok := resumeContentTypes[strings.ToLower(filepath.Ext(name))]
	if !ok {
		return nil, ErrResumeType
	}

	resume := &models.StudentResume{
		StudentProfileID: studentProfileID,
		FileName:         name,
		ContentType:      contentType,
		Data:             data,
	}

	if err := s.store.UpsertResume(ctx, resume); err != nil {
		return nil, err
	}

	return resume, nil
}

func (s *ProfileService) Resume(ctx context.Context, studentProfileID uint) (*models.StudentResume, error) {
	return s.store.FindResume(ctx, studentProfileID)
}

package handlers

import (
	"github.com/innovate-connect/innovate/internal/models"
	"github.com/innovate-connect/innovate/internal/types"
)

func toCompanySummary(c models.CompanyProfile) *types.CompanySummary {
	if c.ID == 0 {
		return nil
	}

	return &types.CompanySummary{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		Location:    c.Location,
		Website:     c.Website,
	}
}

func toInternship(i models.Internship) types.InternshipResponse {
	return types.InternshipResponse{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Technology:  i.Technology,
		Stipend:     i.Stipend,
		PostedAt:    i.PostedAt,
		Company:     toCompanySummary(i.Company),
	}
}

func toInternships(items []models.Internship) []types.InternshipResponse {
	out := make([]types.InternshipResponse, 0, len(items))
	for _, i := range items {
		out = append(out, toInternship(i))
	}
	return out
}

func toStudentProfile(p models.StudentProfile) types.StudentProfileResponse {
	resp := types.StudentProfileResponse{
		ID:           p.ID,
		AccountID:    p.AccountID,
		Email:        p.Account.Email,
		FullName:     p.FullName,
		University:   p.University,
		GitHubLink:   p.GitHubLink,
		LeetCodeLink: p.LeetCodeLink,
		Bio:          p.Bio,
		Location:     p.Location,
		Skills:       p.SkillList(),
	}

	if p.Resume != nil && p.Resume.ID != 0 {
		resp.Resume = &types.ResumeInfo{
			FileName:    p.Resume.FileName,
			ContentType: p.Resume.ContentType,
			UploadedAt:  p.Resume.UpdatedAt,
		}
	}

	return resp
}

func toCompanyProfile(p models.CompanyProfile) types.CompanyProfileResponse {
	return types.CompanyProfileResponse{
		ID:          p.ID,
		AccountID:   p.AccountID,
		CompanyName: p.CompanyName,
		Location:    p.Location,
		Website:     p.Website,
	}
}

func toApplications(items []models.Application) []types.ApplicationResponse {
	out := make([]types.ApplicationResponse, 0, len(items))

	for _, a := range items {
		resp := types.ApplicationResponse{
			ID:        a.ID,
			Status:    a.Status,
			AppliedAt: a.AppliedAt,
		}

		if a.Internship.ID != 0 {
			internship := toInternship(a.Internship)
			resp.Internship = &internship
		}

		if a.StudentProfile.ID != 0 {
			student := toStudentProfile(a.StudentProfile)
			resp.Student = &student
		}

		out = append(out, resp)
	}

	return out
}

func toIdea(i models.Idea) types.IdeaResponse {
	resp := types.IdeaResponse{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Technology:  i.Technology,
		PostedAt:    i.PostedAt,
	}

	if i.StudentProfile.ID != 0 {
		student := toStudentProfile(i.StudentProfile)
		resp.Student = &student
	}

	return resp
}

func toIdeas(items []models.Idea) []types.IdeaResponse {
	out := make([]types.IdeaResponse, 0, len(items))
	for _, i := range items {
		out = append(out, toIdea(i))
	}
	return out
}

func toContactMessages(items []models.ContactMessage) []types.ContactMessageResponse {
	out := make([]types.ContactMessageResponse, 0, len(items))

	for _, m := range items {
		out = append(out, types.ContactMessageResponse{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Message:   m.Message,
			Reviewed:  m.Reviewed,
			CreatedAt: m.CreatedAt,
		})
	}

	return out
}

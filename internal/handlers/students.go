package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovate-connect/innovate/internal/services"
	"github.com/innovate-connect/innovate/internal/types"
	"github.com/innovate-connect/innovate/internal/utils"
)

type StudentProfileRequest struct {
	FullName     string   `json:"full_name" binding:"required"`
	University   string   `json:"university"`
	GitHubLink   string   `json:"github_link" binding:"omitempty,url"`
	LeetCodeLink string   `json:"leetcode_link" binding:"omitempty,url"`
	Bio          string   `json:"bio"`
	Location     string   `json:"location"`
	Skills       []string `json:"skills"`
}

func (h *Handler) GetStudentProfile(ctx *gin.Context) {
	principal, err := utils.GetPrincipal(ctx)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	profile, err := h.Profiles.StudentProfile(ctx.Request.Context(), principal.AccountID)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	resp := toStudentProfile(*profile)
	resp.Email = principal.Email

	ctx.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateStudentProfile(ctx *gin.Context) {
	principal, err := utils.GetPrincipal(ctx)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	var req StudentProfileRequest

	if !h.bind(ctx, &req) {
		return
	}

	profile, err := h.Profiles.UpdateStudentProfile(ctx.Request.Context(), principal.AccountID, services.StudentFields{
		FullName:     req.FullName,
		University:   req.University,
		GitHubLink:   req.GitHubLink,
		LeetCodeLink: req.LeetCodeLink,
		Bio:          req.Bio,
		Location:     req.Location,
		Skills:       req.Skills,
	})

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	resp := toStudentProfile(*profile)
	resp.Email = principal.Email

	ctx.JSON(http.StatusOK, resp)
}

// UploadResume reads the multipart "file" field.
func (h *Handler) UploadResume(ctx *gin.Context) {
	studentID, err := utils.StudentProfileID(ctx, h.Guard)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, types.MaxResumeSize+(1<<20))

	header, err := ctx.FormFile("file")

	if err != nil {
		var tooLarge *http.MaxBytesError

		if errors.As(err, &tooLarge) {
			h.respondError(ctx, services.ErrResumeSize)
			return
		}

		h.respondError(ctx, services.ErrResumeEmpty)
		return
	}

	if header.Size > types.MaxResumeSize {
		h.respondError(ctx, services.ErrResumeSize)
		return
	}

	file, err := header.Open()

	if err != nil {
		h.respondError(ctx, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, types.MaxResumeSize+1))

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	resume, err := h.Profiles.UploadResume(ctx.Request.Context(), studentID, header.Filename, data)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.ResumeInfo{
		FileName:    resume.FileName,
		ContentType: resume.ContentType,
		UploadedAt:  resume.UpdatedAt,
	})
}

func (h *Handler) GetStudent(ctx *gin.Context) {
	id, err := utils.ParseID(ctx, "id")

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	profile, err := h.Profiles.PublicStudent(ctx.Request.Context(), id)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toStudentProfile(*profile))
}

func (h *Handler) DownloadResume(ctx *gin.Context) {
	id, err := utils.ParseID(ctx, "id")

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	resume, err := h.Profiles.Resume(ctx.Request.Context(), id)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resume.FileName))
	ctx.Data(http.StatusOK, resume.ContentType, resume.Data)
}

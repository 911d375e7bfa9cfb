package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovate-connect/innovate/internal/services"
	"github.com/innovate-connect/innovate/internal/utils"
)

type InternshipRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Technology  string  `json:"technology"`
	Stipend     float64 `json:"stipend" binding:"gte=0"`
}

func (r InternshipRequest) input() services.InternshipInput {
	return services.InternshipInput{
		Title:       r.Title,
		Description: r.Description,
		Technology:  r.Technology,
		Stipend:     r.Stipend,
	}
}

func (h *Handler) ListInternships(ctx *gin.Context) {
	internships, err := h.Internships.List(ctx.Request.Context())

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toInternships(internships))
}

func (h *Handler) MyInternships(ctx *gin.Context) {
	companyID, err := utils.CompanyProfileID(ctx, h.Guard)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	internships, err := h.Internships.ListByCompany(ctx.Request.Context(), companyID)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toInternships(internships))
}

func (h *Handler) CreateInternship(ctx *gin.Context) {
	companyID, err := utils.CompanyProfileID(ctx, h.Guard)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	var req InternshipRequest

	if !h.bind(ctx, &req) {
		return
	}

	internship, err := h.Internships.Create(ctx.Request.Context(), companyID, req.input())

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toInternship(*internship))
}

func (h *Handler) UpdateInternship(ctx *gin.Context) {
	id, err := utils.ParseID(ctx, "id")

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	companyID, err := utils.CompanyProfileID(ctx, h.Guard)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	var req InternshipRequest

	if !h.bind(ctx, &req) {
		return
	}

	internship, err := h.Internships.Update(ctx.Request.Context(), id, companyID, req.input())

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toInternship(*internship))
}

func (h *Handler) DeleteInternship(ctx *gin.Context) {
	id, err := utils.ParseID(ctx, "id")

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	companyID, err := utils.CompanyProfileID(ctx, h.Guard)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	if err := h.Internships.Delete(ctx.Request.Context(), id, companyID); err != nil {
		h.respondError(ctx, err)
		return
	}

	message(ctx, http.StatusOK, "Internship deleted")
}

func (h *Handler) InternshipApplicants(ctx *gin.Context) {
	id, err := utils.ParseID(ctx, "id")

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	companyID, err := utils.CompanyProfileID(ctx, h.Guard)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	applications, err := h.Applications.ListForInternship(ctx.Request.Context(), id, companyID)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toApplications(applications))
}

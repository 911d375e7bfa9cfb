package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovate-connect/innovate/internal/services"
	"github.com/innovate-connect/innovate/internal/utils"
)

type CompanyProfileRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Location    string `json:"location"`
	Website     string `json:"website" binding:"omitempty,url"`
}

func (h *Handler) GetCompanyProfile(ctx *gin.Context) {
	principal, err := utils.GetPrincipal(ctx)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	profile, err := h.Profiles.CompanyProfile(ctx.Request.Context(), principal.AccountID)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toCompanyProfile(*profile))
}

func (h *Handler) UpdateCompanyProfile(ctx *gin.Context) {
	principal, err := utils.GetPrincipal(ctx)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	var req CompanyProfileRequest

	if !h.bind(ctx, &req) {
		return
	}

	profile, err := h.Profiles.UpdateCompanyProfile(ctx.Request.Context(), principal.AccountID, services.CompanyFields{
		CompanyName: req.CompanyName,
		Location:    req.Location,
		Website:     req.Website,
	})

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toCompanyProfile(*profile))
}

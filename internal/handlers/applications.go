package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovate-connect/innovate/internal/utils"
)

func (h *Handler) Apply(ctx *gin.Context) {
	internshipID, err := utils.ParseID(ctx, "id")

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	studentID, err := utils.StudentProfileID(ctx, h.Guard)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	application, err := h.Applications.Apply(ctx.Request.Context(), studentID, internshipID)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Applied successfully",
		"id":      application.ID,
		"status":  application.Status,
	})
}

func (h *Handler) MyApplications(ctx *gin.Context) {
	studentID, err := utils.StudentProfileID(ctx, h.Guard)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	applications, err := h.Applications.ListForStudent(ctx.Request.Context(), studentID)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toApplications(applications))
}

func (h *Handler) CompanyApplications(ctx *gin.Context) {
	companyID, err := utils.CompanyProfileID(ctx, h.Guard)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	applications, err := h.Applications.ListForCompany(ctx.Request.Context(), companyID)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toApplications(applications))
}

// UpdateApplicationStatus accepts either a bare JSON string ("Accepted") or
// {"status": "Accepted"}.
func (h *Handler) UpdateApplicationStatus(ctx *gin.Context) {
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

	raw, err := ctx.GetRawData()

	if err != nil {
		h.respondError(ctx, errInvalidRequest)
		return
	}

	status, ok := parseStatusBody(raw)
	if !ok {
		h.respondError(ctx, errInvalidRequest)
		return
	}

	application, err := h.Applications.UpdateStatus(ctx.Request.Context(), id, status, companyID)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Status updated",
		"id":      application.ID,
		"status":  application.Status,
	})
}

func parseStatusBody(raw []byte) (string, bool) {
	var status string
	if err := json.Unmarshal(raw, &status); err == nil {
		return status, true
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Status != "" {
		return body.Status, true
	}

	return "", false
}

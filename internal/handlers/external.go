package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovate-connect/innovate/internal/services"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

func (h *Handler) SubmitContact(ctx *gin.Context) {
	var req ContactRequest

	if !h.bind(ctx, &req) {
		return
	}

	if _, err := h.Contacts.Submit(ctx.Request.Context(), services.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}); err != nil {
		h.respondError(ctx, err)
		return
	}

	message(ctx, http.StatusOK, "Message sent successfully")
}

func (h *Handler) LeetCodeStats(ctx *gin.Context) {
	stats, err := h.Stats.Stats(ctx.Request.Context(), ctx.Param("username"))

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

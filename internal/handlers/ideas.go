package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovate-connect/innovate/internal/services"
	"github.com/innovate-connect/innovate/internal/utils"
)

type IdeaRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Technology  string `json:"technology"`
}

func (r IdeaRequest) input() services.IdeaInput {
	return services.IdeaInput{Title: r.Title, Description: r.Description, Technology: r.Technology}
}

func (h *Handler) ListIdeas(ctx *gin.Context) {
	ideas, err := h.Ideas.List(ctx.Request.Context())

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toIdeas(ideas))
}

func (h *Handler) MyIdeas(ctx *gin.Context) {
	studentID, err := utils.StudentProfileID(ctx, h.Guard)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ideas, err := h.Ideas.ListByStudent(ctx.Request.Context(), studentID)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toIdeas(ideas))
}

func (h *Handler) CreateIdea(ctx *gin.Context) {
	studentID, err := utils.StudentProfileID(ctx, h.Guard)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	var req IdeaRequest

	if !h.bind(ctx, &req) {
		return
	}

	idea, err := h.Ideas.Create(ctx.Request.Context(), studentID, req.input())

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toIdea(*idea))
}

func (h *Handler) UpdateIdea(ctx *gin.Context) {
	id, err := utils.ParseID(ctx, "id")

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	studentID, err := utils.StudentProfileID(ctx, h.Guard)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	var req IdeaRequest

	if !h.bind(ctx, &req) {
		return
	}

	idea, err := h.Ideas.Update(ctx.Request.Context(), id, studentID, req.input())

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toIdea(*idea))
}

func (h *Handler) DeleteIdea(ctx *gin.Context) {
	id, err := utils.ParseID(ctx, "id")

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	studentID, err := utils.StudentProfileID(ctx, h.Guard)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	if err := h.Ideas.Delete(ctx.Request.Context(), id, studentID); err != nil {
		h.respondError(ctx, err)
		return
	}

	message(ctx, http.StatusOK, "Idea deleted")
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovate-connect/innovate/internal/services"
	"github.com/innovate-connect/innovate/internal/utils"
)

func (h *Handler) AdminStats(ctx *gin.Context) {
	stats, err := h.Admin.Stats(ctx.Request.Context())

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

func (h *Handler) AdminUsers(ctx *gin.Context) {
	accounts, err := h.Admin.Accounts(ctx.Request.Context())

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, accounts)
}

// AdminDeleteUser answers 400 rather than 403 when the target is an admin:
// the caller is authorized, the request itself is invalid.
func (h *Handler) AdminDeleteUser(ctx *gin.Context) {
	id, err := utils.ParseID(ctx, "id")

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	err = h.Accounts.DeleteAccount(ctx.Request.Context(), id)

	if errors.Is(err, services.ErrAdminProtected) {
		_ = ctx.Error(err)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": services.ErrAdminProtected.Message})
		return
	}

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	message(ctx, http.StatusOK, "User deleted")
}

func (h *Handler) AdminIdeas(ctx *gin.Context) {
	ideas, err := h.Ideas.List(ctx.Request.Context())

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toIdeas(ideas))
}

func (h *Handler) AdminDeleteIdea(ctx *gin.Context) {
	id, err := utils.ParseID(ctx, "id")

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	if err := h.Ideas.AdminDelete(ctx.Request.Context(), id); err != nil {
		h.respondError(ctx, err)
		return
	}

	message(ctx, http.StatusOK, "Idea deleted")
}

func (h *Handler) AdminInternships(ctx *gin.Context) {
	internships, err := h.Internships.List(ctx.Request.Context())

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toInternships(internships))
}

func (h *Handler) AdminDeleteInternship(ctx *gin.Context) {
	id, err := utils.ParseID(ctx, "id")

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	if err := h.Internships.AdminDelete(ctx.Request.Context(), id); err != nil {
		h.respondError(ctx, err)
		return
	}

	message(ctx, http.StatusOK, "Internship deleted")
}

func (h *Handler) AdminContacts(ctx *gin.Context) {
	messages, err := h.Contacts.List(ctx.Request.Context())

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toContactMessages(messages))
}

func (h *Handler) AdminDeleteContact(ctx *gin.Context) {
	id, err := utils.ParseID(ctx, "id")

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	if err := h.Contacts.Delete(ctx.Request.Context(), id); err != nil {
		h.respondError(ctx, err)
		return
	}

	message(ctx, http.StatusOK, "Message deleted")
}

func (h *Handler) AdminToggleContact(ctx *gin.Context) {
	id, err := utils.ParseID(ctx, "id")

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	reviewed, err := h.Contacts.ToggleReviewed(ctx.Request.Context(), id)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": id, "reviewed": reviewed})
}

package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/innovate-connect/innovate/internal/access"
	"github.com/innovate-connect/innovate/internal/errs"
	"github.com/innovate-connect/innovate/internal/health"
	"github.com/innovate-connect/innovate/internal/services"
)

// Handler holds the dependencies shared by every HTTP handler.
type Handler struct {
	Accounts     *services.AccountService
	Applications *services.ApplicationService
	Internships  *services.InternshipService
	Ideas        *services.IdeaService
	Profiles     *services.ProfileService
	Contacts     *services.ContactService
	Admin        *services.AdminService
	Stats        *services.StatsClient
	Guard        *access.Guard
	Logger       *slog.Logger

	// Health probes dependencies for /api/health. Optional.
	Health *health.Checker
}

var errInvalidRequest = errs.NewValidation("Invalid request")

// respondError writes err as {"error": message} with the status of its kind.
// Internal errors are logged and reported with a generic message.
func (h *Handler) respondError(ctx *gin.Context, err error) {
	kind := errs.KindOf(err)

	if kind == errs.Internal {
		h.Logger.Error("request failed", "path", ctx.FullPath(), "error", err)
	}

	_ = ctx.Error(err)
	ctx.AbortWithStatusJSON(errs.Status(kind), gin.H{"error": errs.Message(err)})
}

func (h *Handler) bind(ctx *gin.Context, dst any) bool {
	if err := ctx.ShouldBindJSON(dst); err != nil {
		h.Logger.Debug("failed to bind JSON", "path", ctx.FullPath(), "error", err)
		h.respondError(ctx, errInvalidRequest)
		return false
	}
	return true
}

func message(ctx *gin.Context, status int, text string) {
	ctx.JSON(status, gin.H{"message": text})
}

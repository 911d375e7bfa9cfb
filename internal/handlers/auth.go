package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovate-connect/innovate/internal/errs"
	"github.com/innovate-connect/innovate/internal/services"
	"github.com/innovate-connect/innovate/internal/types"
	"github.com/innovate-connect/innovate/internal/utils"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"required"`

	// Student
	FullName     string   `json:"full_name"`
	University   string   `json:"university"`
	GitHubLink   string   `json:"github_link"`
	LeetCodeLink string   `json:"leetcode_link"`
	Bio          string   `json:"bio"`
	Skills       []string `json:"skills"`

	// Company
	CompanyName string `json:"company_name"`
	Website     string `json:"website"`

	Location string `json:"location"`
}

// profile picks the role-specific fields. Admin accounts cannot self-register.
func (r RegisterRequest) profile() (services.RoleProfile, error) {
	role, ok := types.ParseRole(r.Role)

	switch {
	case ok && role == types.RoleStudent:
		return services.StudentFields{
			FullName:     r.FullName,
			University:   r.University,
			GitHubLink:   r.GitHubLink,
			LeetCodeLink: r.LeetCodeLink,
			Bio:          r.Bio,
			Location:     r.Location,
			Skills:       r.Skills,
		}, nil
	case ok && role == types.RoleCompany:
		return services.CompanyFields{
			CompanyName: r.CompanyName,
			Location:    r.Location,
			Website:     r.Website,
		}, nil
	}

	return nil, errs.NewValidation("Role must be Student or Company")
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if !h.bind(ctx, &req) {
		return
	}

	profile, err := req.profile()

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	accountID, err := h.Accounts.Register(ctx.Request.Context(), services.Registration{
		Email:    req.Email,
		Password: req.Password,
		Profile:  profile,
	})

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Registration successful",
		"id":      accountID,
	})
}

func (h *Handler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.respondError(ctx, services.ErrInvalidCredentials)
		return
	}

	session, err := h.Accounts.Login(ctx.Request.Context(), req.Email, req.Password)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, session)
}

func (h *Handler) Verify(ctx *gin.Context) {
	principal, err := utils.GetPrincipal(ctx)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	summary, err := h.Accounts.Summary(ctx.Request.Context(), principal.AccountID)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

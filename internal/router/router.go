package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/innovate-connect/innovate/internal/access"
	"github.com/innovate-connect/innovate/internal/config"
	"github.com/innovate-connect/innovate/internal/handlers"
	"github.com/innovate-connect/innovate/internal/logging"
	"github.com/innovate-connect/innovate/internal/middleware"
)

func NewRouter(h *handlers.Handler, verifier middleware.TokenVerifier, cfg config.ServerConfig, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authenticate := middleware.Authenticate(verifier)
	can := func(resource, action string) gin.HandlerFunc {
		return middleware.RequireRoles(h.Guard, resource, action)
	}

	// The "my", "my-internships" and "upload-resume" paths are kept for
	// existing web clients.
	api := r.Group("/api")
	{
		api.GET("/health", h.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
			auth.GET("/verify", authenticate, h.Verify)
		}

		internships := api.Group("/internships", authenticate)
		{
			internships.GET("", h.ListInternships)

			manage := can(access.ResourceInternship, access.ActionManage)
			internships.GET("/mine", manage, h.MyInternships)
			internships.GET("/my-internships", manage, h.MyInternships)
			internships.GET("/:id/applicants", manage, h.InternshipApplicants)
			internships.POST("", manage, h.CreateInternship)
			internships.PUT("/:id", manage, h.UpdateInternship)
			internships.DELETE("/:id", manage, h.DeleteInternship)
		}

		applications := api.Group("/applications", authenticate)
		{
			applications.POST("/:id", can(access.ResourceApplication, access.ActionApply), h.Apply)
			applications.GET("/mine", can(access.ResourceApplication, access.ActionList), h.MyApplications)
			applications.GET("/my", can(access.ResourceApplication, access.ActionList), h.MyApplications)
			applications.GET("/company", can(access.ResourceApplication, access.ActionReview), h.CompanyApplications)
			applications.PUT("/:id/status", can(access.ResourceApplication, access.ActionReview), h.UpdateApplicationStatus)
		}

		ideas := api.Group("/ideas", authenticate)
		{
			ideas.GET("", h.ListIdeas)

			manage := can(access.ResourceIdea, access.ActionManage)
			ideas.GET("/mine", manage, h.MyIdeas)
			ideas.GET("/my", manage, h.MyIdeas)
			ideas.POST("", manage, h.CreateIdea)
			ideas.PUT("/:id", manage, h.UpdateIdea)
			ideas.DELETE("/:id", manage, h.DeleteIdea)
		}

		students := api.Group("/students", authenticate)
		{
			manage := can(access.ResourceStudentProfile, access.ActionManage)
			students.GET("/profile", manage, h.GetStudentProfile)
			students.PUT("/profile", manage, h.UpdateStudentProfile)
			students.POST("/resume", manage, h.UploadResume)
			students.POST("/upload-resume", manage, h.UploadResume)
			students.GET("/:id", h.GetStudent)
			students.GET("/:id/resume", h.DownloadResume)
		}

		companies := api.Group("/companies", authenticate, can(access.ResourceCompanyProfile, access.ActionManage))
		{
			companies.GET("/profile", h.GetCompanyProfile)
			companies.PUT("/profile", h.UpdateCompanyProfile)
		}

		external := api.Group("/external")
		{
			external.POST("/contact", h.SubmitContact)
			external.GET("/leetcode/:username", h.LeetCodeStats)
		}

		admin := api.Group("/admin", authenticate, can(access.ResourceAdmin, access.ActionManage))
		{
			admin.GET("/stats", h.AdminStats)
			admin.GET("/users", h.AdminUsers)
			admin.DELETE("/users/:id", h.AdminDeleteUser)
			admin.GET("/ideas", h.AdminIdeas)
			admin.DELETE("/ideas/:id", h.AdminDeleteIdea)
			admin.GET("/internships", h.AdminInternships)
			admin.DELETE("/internships/:id", h.AdminDeleteInternship)
			admin.GET("/contacts", h.AdminContacts)
			admin.DELETE("/contacts/:id", h.AdminDeleteContact)
			admin.PUT("/contacts/:id/review", h.AdminToggleContact)
		}
	}

	return r
}

package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobhunt/backend/internal/api/handlers"
	"github.com/jobhunt/backend/internal/api/middleware"
	"github.com/jobhunt/backend/internal/services"
)

type Deps struct {
	Jobs         *handlers.JobHandler
	Applications *handlers.ApplicationHandler
	Ratings      *handlers.RatingHandler
	Users        *handlers.UserHandler
	Resumes      *handlers.ResumeHandler
	Uploads      *handlers.UploadHandler
	Admin        *handlers.AdminHandler

	Resolver middleware.PrincipalResolver
	Limiter  *middleware.RedisLimiter
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Verification documents are fetched by reviewers from a plain link,
	// so this one stays outside the JWT group.
	r.GET("/api/verification/:userId", d.Admin.VerificationDocument)

	// Protected routes (JWT)
	api := r.Group("/api")
	api.Use(middleware.JWTAuth(d.Resolver))
	api.Use(middleware.RateLimit(d.Limiter, 120, time.Minute))

	api.POST("/jobs", d.Jobs.Create)
	api.GET("/jobs", d.Jobs.List)
	api.GET("/jobs/:id", d.Jobs.Get)
	api.PUT("/jobs/:id", d.Jobs.Update)
	api.DELETE("/jobs/:id", d.Jobs.Delete)

	api.POST("/jobs/:id/applications", d.Applications.Apply)
	api.GET("/jobs/:id/applications", d.Applications.ListForJob)
	api.GET("/applications", d.Applications.ListMine)
	api.PUT("/applications/:id", d.Applications.UpdateStatus)
	api.GET("/applicants", d.Applications.ListApplicants)

	api.PUT("/rating", d.Ratings.Upsert)
	api.GET("/rating", d.Ratings.Get)

	api.GET("/user", d.Users.Me)
	api.GET("/user/:id", d.Users.GetByID)
	api.PUT("/user", d.Users.Update)

	api.POST("/resume", d.Resumes.Create)
	api.GET("/resume/:id/pdf", d.Resumes.PDF)

	api.GET("/recruiter/status", d.Admin.RecruiterStatus)

	admin := api.Group("/")
	admin.Use(middleware.RequireAdmin())
	admin.POST("/verify", d.Admin.Verify)
	admin.GET("/getRecruiters", d.Admin.ListRecruiters)

	upload := r.Group("/upload")
	upload.Use(middleware.JWTAuth(d.Resolver))
	upload.POST("/resume", d.Uploads.Handle(services.UploadResume))
	upload.POST("/profile", d.Uploads.Handle(services.UploadProfileImage))
	upload.POST("/verification", d.Uploads.Handle(services.UploadVerification))
}

package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jobhunt/backend/config"
	"github.com/jobhunt/backend/internal/api/handlers"
	"github.com/jobhunt/backend/internal/api/middleware"
	"github.com/jobhunt/backend/internal/api/routes"
	"github.com/jobhunt/backend/internal/logger"
	mongorepo "github.com/jobhunt/backend/internal/repositories/mongo"
	"github.com/jobhunt/backend/internal/services"
	"github.com/jobhunt/backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	lg := logger.New()

	// Init MongoDB
	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	lg.Info("MongoDB connected")
	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}

	// Init Redis. Rate limiting degrades open without it, so a missing
	// Redis only costs us the limiter.
	if err := config.InitRedis(); err != nil {
		lg.WithError(err).Warn("Redis unavailable, rate limiting disabled")
		config.RedisClient = nil
	} else {
		lg.Info("Redis connected")
	}

	var uploader storage.Uploader
	if bucket := os.Getenv("GCS_BUCKET"); bucket != "" {
		gcs, err := storage.NewGCSUploader(context.Background(), bucket)
		if err != nil {
			log.Fatalf("GCS init error: %v", err)
		}
		uploader = gcs
		lg.Info("GCS storage ready")
	} else {
		lg.Warn("GCS_BUCKET not set, file uploads disabled")
	}

	db := config.MongoDatabase()

	users := mongorepo.NewUserRepo(db)
	profiles := mongorepo.NewProfileRepo(db)
	jobs := mongorepo.NewJobRepo(db)
	apps := mongorepo.NewApplicationRepo(db)
	ratings := mongorepo.NewRatingRepo(db)
	resumes := mongorepo.NewResumeRepo(db)

	userSvc := services.NewUserService(users, profiles)
	jobSvc := services.NewJobService(jobs)
	appSvc := services.NewApplicationService(apps, jobs, lg)
	ratingSvc := services.NewRatingService(ratings, apps, jobs, profiles)
	resumeSvc := services.NewResumeService(resumes)
	uploadSvc := services.NewUploadService(uploader)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(lg))
	r.Use(cors.Default())

	routes.RegisterRoutes(r, routes.Deps{
		Jobs:         handlers.NewJobHandler(jobSvc),
		Applications: handlers.NewApplicationHandler(appSvc),
		Ratings:      handlers.NewRatingHandler(ratingSvc),
		Users:        handlers.NewUserHandler(userSvc),
		Resumes:      handlers.NewResumeHandler(resumeSvc),
		Uploads:      handlers.NewUploadHandler(uploadSvc),
		Admin:        handlers.NewAdminHandler(userSvc),
		Resolver:     userSvc,
		Limiter:      middleware.NewRedisLimiter(config.RedisClient),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

package router

import (
	"net/http"
	"time"

	"github.com/edusync/sis-backend/internal/config"
	"github.com/edusync/sis-backend/internal/handler"
	"github.com/edusync/sis-backend/internal/middleware"
	"github.com/edusync/sis-backend/internal/response"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Student    *handler.StudentHandler
	Instructor *handler.InstructorHandler
	Course     *handler.CourseHandler
	Enrollment *handler.EnrollmentHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for mutating routes.
	var writeGuard gin.HandlerFunc
	if cfg.RateLimit > 0 {
		writeGuard = middleware.NewWriteGuard(cfg.RateLimit, cfg.RateWindow).Middleware()
	} else {
		writeGuard = func(c *gin.Context) { c.Next() }
	}

	api := router.Group("/api")
	{
		students := api.Group("/students")
		{
			students.GET("", handlers.Student.List)
			students.GET("/:id", handlers.Student.Get)
			students.POST("", writeGuard, handlers.Student.Create)
			students.PUT("/:id", writeGuard, handlers.Student.Update)
			students.DELETE("/:id", writeGuard, handlers.Student.Delete)
		}

		instructors := api.Group("/instructors")
		{
			instructors.GET("", handlers.Instructor.List)
			instructors.GET("/:id", handlers.Instructor.Get)
			instructors.POST("", writeGuard, handlers.Instructor.Create)
			instructors.PUT("/:id", writeGuard, handlers.Instructor.Update)
			instructors.DELETE("/:id", writeGuard, handlers.Instructor.Delete)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", handlers.Course.List)
			courses.GET("/:id", handlers.Course.Get)
			courses.POST("", writeGuard, handlers.Course.Create)
			courses.PUT("/:id", writeGuard, handlers.Course.Update)
			courses.DELETE("/:id", writeGuard, handlers.Course.Delete)
		}

		enrollments := api.Group("/enrollments")
		{
			enrollments.POST("", writeGuard, handlers.Enrollment.Create)
			enrollments.GET("/student/:studentId", handlers.Enrollment.ListByStudent)
			enrollments.GET("/course/:courseId", handlers.Enrollment.ListByCourse)
			enrollments.DELETE("/:id", writeGuard, handlers.Enrollment.Cancel)
		}
	}

	return router
}

package http

import (
	"github.com/gin-gonic/gin"

	"github.com/AshilyAnnMathew/TodoServer/internal/adapter/http/handlers"
	"github.com/AshilyAnnMathew/TodoServer/internal/adapter/http/middleware"
	"github.com/AshilyAnnMathew/TodoServer/internal/core/ports"
)

// RegisterRoutes mounts the liveness probe, the health endpoints and the
// authenticated task resource.
func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	verifier ports.TokenVerifier,
	scoper ports.TaskStoreScoper,
) {
	r.GET("/", healthHandler.Liveness)

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		tasks := api.Group("/tasks")
		tasks.Use(middleware.AuthMiddleware(verifier, scoper))
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
		}
	}
}

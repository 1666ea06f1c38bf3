package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/AshilyAnnMathew/TodoServer/internal/adapter/http/middleware"
)

const (
	StatusOk        = "ok"
	StatusDown      = "down"
	healthDBTimeout = 2 * time.Second
)

type HealthReport struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Database          string `json:"database"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Mysql string `json:"mysql"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

type HealthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Liveness answers the root path with a plain string so that load balancers
// and uptime probes need no JSON parsing.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.String(http.StatusOK, "To-Do API is running")
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk
	database := StatusOk

	if !h.checkConnectionToDatabase(c.Request.Context()) {
		statusCode = http.StatusInternalServerError
		message = StatusDown
		database = StatusDown
	}

	c.JSON(statusCode, HealthReport{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Database:          database,
		Message:           message,
	})
}

// CheckHealthReport always answers 200: it reports per-service status in the
// body and leaves the up/down decision to the caller.
func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	databaseStatus := StatusDown
	if h.checkConnectionToDatabase(c.Request.Context()) {
		databaseStatus = StatusOk
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			Mysql: databaseStatus,
		},
	})
}

func (h *HealthHandler) checkConnectionToDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	// Avoid hanging health checks if the database stalls.
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return h.db.PingContext(timeoutCtx) == nil
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/pkg/response"
)

type HealthHandler struct {
	DB *pgxpool.Pool
}

func NewHealthHandler(db *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{DB: db}
}

// Check GET /api/health
func (h *HealthHandler) Check(c *gin.Context) {
	status := gin.H{"status": "ok"}
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.Ping(ctx); err != nil {
			status["status"] = "degraded"
			status["database"] = "unreachable"
			response.Error[any](c, http.StatusServiceUnavailable, "unhealthy", status)
			return
		}
		status["database"] = "ok"
	}
	response.Success(c, http.StatusOK, status, "healthy", nil)
}

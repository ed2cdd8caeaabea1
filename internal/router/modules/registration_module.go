package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/internal/container"
	handlers "github.com/ShaikAbbuSofiyan/health-sign-up-oasis/internal/interface/http"
	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/internal/interface/middleware"
)

// RegistrationModule wires the registration handlers into routes.
// Public: POST /api/register, POST /api/register/validate,
// GET /api/registrations/search
type RegistrationModule struct {
	Handler *handlers.RegistrationHandler
}

func NewRegistrationModule(h *handlers.RegistrationHandler) *RegistrationModule {
	return &RegistrationModule{Handler: h}
}

func (m *RegistrationModule) Register(rg *gin.RouterGroup) {
	// Dry-run validation drives inline form feedback and gets a higher budget
	// than submission.
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	validateLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIPAndPath(), nil)
	searchLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/register/validate", validateLimiter, m.Handler.Validate)
	rg.GET("/registrations/search", searchLimiter, m.Handler.Search)
}

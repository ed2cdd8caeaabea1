package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/internal/application"
	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/internal/domain/registration"
	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/pkg/response"
	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/pkg/validation"
)

type RegistrationHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewRegistrationHandler(svc *application.Service, logger *logrus.Logger) *RegistrationHandler {
	return &RegistrationHandler{Svc: svc, Logger: logger}
}

func clientIP(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	return c.ClientIP()
}

// Register POST /api/register
// Validates the submitted fields, stores the account, and returns the
// confirmation notification (title + description).
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req registration.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	meta := application.Meta{IP: clientIP(c), UserAgent: c.GetHeader("User-Agent")}
	conf, err := h.Svc.Register(c.Request.Context(), req, meta)
	if err != nil {
		var verr *application.ValidationError
		switch {
		case errors.As(err, &verr):
			response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", verr.Fields)
		case errors.Is(err, application.ErrUsernameTaken):
			response.Error[any](c, http.StatusConflict, "registration conflict", map[string]string{"username": "already registered"})
		case errors.Is(err, application.ErrEmailTaken):
			response.Error[any](c, http.StatusConflict, "registration conflict", map[string]string{"email": "already registered"})
		default:
			if h.Logger != nil {
				h.Logger.WithError(err).Error("registration failed")
			}
			response.Error[any](c, http.StatusInternalServerError, "registration failed", nil)
		}
		return
	}

	response.Success(c, http.StatusCreated, conf, "account created", nil)
}

// Validate POST /api/register/validate
// Dry-runs the field validator without any side effect, for inline form
// feedback.
func (h *RegistrationHandler) Validate(c *gin.Context) {
	var req registration.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res := registration.Validate(req)
	if !res.Accepted() {
		response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", res.Errors)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"accepted": true}, "all fields valid", nil)
}

// Search GET /api/registrations/search?q=&size=
func (h *RegistrationHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", map[string]string{"q": "is required"})
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	items, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("registration search failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, items, "search results", map[string]any{"count": len(items)})
}

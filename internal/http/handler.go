package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sponsoracareer/funding-service/internal/http/middleware"
	"github.com/sponsoracareer/funding-service/internal/model"
	"github.com/sponsoracareer/funding-service/internal/service"
)

// DocumentGenerator renders the contract agreement PDF.
type DocumentGenerator interface {
	Generate(doc model.ContractDocument) ([]byte, error)
}

// ScheduleExporter renders the payment schedule workbook.
type ScheduleExporter interface {
	Generate(schedule model.PaymentSchedule) ([]byte, error)
}

type Handler struct {
	auth          *service.AuthService
	profiles      *service.ProfileService
	offers        *service.OfferService
	contracts     *service.ContractService
	milestones    *service.MilestoneService
	notifications *service.NotificationService
	pdf           DocumentGenerator
	excel         ScheduleExporter
	log           zerolog.Logger
}

func NewHandler(
	auth *service.AuthService,
	profiles *service.ProfileService,
	offers *service.OfferService,
	contracts *service.ContractService,
	milestones *service.MilestoneService,
	notifications *service.NotificationService,
	pdf DocumentGenerator,
	excel ScheduleExporter,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		auth:          auth,
		profiles:      profiles,
		offers:        offers,
		contracts:     contracts,
		milestones:    milestones,
		notifications: notifications,
		pdf:           pdf,
		excel:         excel,
		log:           log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	api := router.Group("/api")

	api.POST("/auth/register", h.register)
	api.POST("/auth/login", h.login)
	api.GET("/auth/verify/:token", h.verifyEmail)
	api.POST("/auth/resend-verification", h.resendVerification)

	protected := api.Group("/")
	protected.Use(authMiddleware)

	protected.GET("/profile", h.getProfile)
	protected.POST("/profile", h.saveProfile)
	protected.GET("/preferences", h.getPreferences)
	protected.POST("/preferences", h.savePreferences)

	protected.GET("/offers", h.listOffers)
	protected.POST("/offers", h.createOffer)
	protected.POST("/offers/:id/status", h.decideOffer)
	protected.PUT("/offers/:id/status", h.decideOffer)

	protected.GET("/contracts", h.listContracts)
	protected.POST("/contracts/:id/progress", h.recordPayment)
	protected.GET("/contracts/:id/document", h.exportContractDocument)
	protected.GET("/contracts/:id/schedule/export", h.exportContractSchedule)

	protected.GET("/milestones", h.listMilestones)
	protected.POST("/milestones", h.createMilestone)
	protected.PUT("/milestones/:id", h.updateMilestone)
	protected.POST("/milestones/:id/toggle", h.toggleMilestone)
	protected.POST("/milestones/reminders", h.remindDueMilestones)
	protected.GET("/progress", h.goalProgress)

	protected.GET("/notifications", h.listNotifications)
	protected.PUT("/notifications/:id/read", h.markNotificationRead)
	protected.PUT("/notifications/mark-all-read", h.markAllNotificationsRead)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidTransition), errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func requirePrincipal(c *gin.Context) (model.Principal, bool) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return model.Principal{}, false
	}
	return principal, true
}

func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed, nil
		}
	}
	return nil, service.ErrInvalidInput
}

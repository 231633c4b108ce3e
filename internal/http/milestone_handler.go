package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sponsoracareer/funding-service/internal/service"
)

type milestoneRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	TargetDate  string `json:"targetDate"`
	Completed   bool   `json:"completed"`
	Progress    int    `json:"progress"`
}

func (r milestoneRequest) toInput() (service.MilestoneInput, error) {
	targetDate, err := parseDate(r.TargetDate)
	if err != nil {
		return service.MilestoneInput{}, err
	}
	return service.MilestoneInput{
		Title:       r.Title,
		Description: r.Description,
		TargetDate:  targetDate,
		Completed:   r.Completed,
		Progress:    r.Progress,
	}, nil
}

func (h *Handler) listMilestones(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	milestones, err := h.milestones.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMilestoneResponses(milestones))
}

func (h *Handler) createMilestone(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req milestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target date"})
		return
	}

	milestone, err := h.milestones.Create(c.Request.Context(), input, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMilestoneResponse(*milestone))
}

func (h *Handler) updateMilestone(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req milestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target date"})
		return
	}

	milestone, err := h.milestones.Update(c.Request.Context(), id, input, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMilestoneResponse(*milestone))
}

func (h *Handler) toggleMilestone(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	milestone, err := h.milestones.Toggle(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMilestoneResponse(*milestone))
}

func (h *Handler) remindDueMilestones(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	count, err := h.milestones.RemindDue(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reminded": count})
}

func (h *Handler) goalProgress(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	progress, err := h.milestones.GoalProgress(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"percentage":          progress.Percentage,
		"completedMilestones": progress.CompletedMilestones,
		"totalMilestones":     progress.TotalMilestones,
	})
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sponsoracareer/funding-service/internal/model"
	"github.com/sponsoracareer/funding-service/internal/service"
)

type createOfferRequest struct {
	DreamerID      string   `json:"dreamerId" binding:"required"`
	Amount         float64  `json:"amount" binding:"required"`
	DurationMonths int      `json:"durationMonths" binding:"required"`
	Type           string   `json:"type" binding:"required"`
	InterestRate   *float64 `json:"interestRate"`
	Message        string   `json:"message"`
}

type decideOfferRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) listOffers(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	offers, err := h.offers.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOfferResponses(offers))
}

func (h *Handler) createOffer(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req createOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dreamerID, err := uuid.Parse(req.DreamerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dreamer id"})
		return
	}
	offerType, ok := model.ParseOfferType(req.Type)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offer type"})
		return
	}

	offer, err := h.offers.Create(c.Request.Context(), service.CreateOfferInput{
		DreamerID:      dreamerID,
		Amount:         req.Amount,
		DurationMonths: req.DurationMonths,
		Type:           offerType,
		InterestRate:   req.InterestRate,
		Message:        req.Message,
		Principal:      principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOfferResponse(*offer))
}

func (h *Handler) decideOffer(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req decideOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	decision, ok := model.ParseOfferDecision(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be accepted or declined"})
		return
	}

	result, err := h.offers.Decide(c.Request.Context(), service.DecideOfferInput{
		OfferID:   id,
		Decision:  decision,
		Principal: principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	response := gin.H{"offer": toOfferResponse(result.Offer)}
	if result.Contract != nil {
		response["contract"] = toContractResponse(*result.Contract)
	}
	c.JSON(http.StatusOK, response)
}

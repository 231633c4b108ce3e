package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sponsoracareer/funding-service/internal/service"
)

type registerRequest struct {
	Email          string                 `json:"email" binding:"required"`
	Password       string                 `json:"password" binding:"required"`
	UserType       string                 `json:"userType" binding:"required"`
	FirstName      string                 `json:"firstName"`
	LastName       string                 `json:"lastName"`
	Location       string                 `json:"location"`
	Phone          string                 `json:"phone"`
	DreamerProfile *dreamerProfileRequest `json:"dreamerProfile"`
	SponsorProfile *sponsorProfileRequest `json:"sponsorProfile"`
	Preferences    *preferencesRequest    `json:"preferences"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type resendVerificationRequest struct {
	Email string `json:"email" binding:"required"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		UserType:  req.UserType,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Location:  req.Location,
		Phone:     req.Phone,
	}
	if req.DreamerProfile != nil {
		profile := req.DreamerProfile.toInput()
		input.DreamerProfile = &profile
	}
	if req.SponsorProfile != nil {
		profile := req.SponsorProfile.toInput()
		input.SponsorProfile = &profile
	}
	if req.Preferences != nil {
		prefs := req.Preferences.toInput()
		input.Preferences = &prefs
	}

	result, err := h.auth.Register(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, authResponse{User: toUserResponse(result.User), Token: result.Token})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{User: toUserResponse(result.User), Token: result.Token})
}

func (h *Handler) verifyEmail(c *gin.Context) {
	token := c.Param("token")
	email := c.Query("email")
	if err := h.auth.VerifyEmail(c.Request.Context(), email, token); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "email verified"})
}

func (h *Handler) resendVerification(c *gin.Context) {
	var req resendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.ResendVerification(c.Request.Context(), req.Email); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "verification email sent"})
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sponsoracareer/funding-service/internal/service"
)

type dreamerProfileRequest struct {
	FullName            string   `json:"fullName"`
	Location            string   `json:"location"`
	Bio                 string   `json:"bio"`
	Goal                string   `json:"goal"`
	ExpectedDurationMin int      `json:"expectedDurationMin"`
	ExpectedDurationMax int      `json:"expectedDurationMax"`
	WeeklyNeed          float64  `json:"weeklyNeed"`
	Skills              string   `json:"skills"`
	Education           string   `json:"education"`
	FundingTypes        []string `json:"fundingTypes"`
	ProfileCompleted    bool     `json:"profileCompleted"`
}

func (r dreamerProfileRequest) toInput() service.DreamerProfileInput {
	return service.DreamerProfileInput{
		FullName:            r.FullName,
		Location:            r.Location,
		Bio:                 r.Bio,
		Goal:                r.Goal,
		ExpectedDurationMin: r.ExpectedDurationMin,
		ExpectedDurationMax: r.ExpectedDurationMax,
		WeeklyNeed:          r.WeeklyNeed,
		Skills:              r.Skills,
		Education:           r.Education,
		FundingTypes:        r.FundingTypes,
		ProfileCompleted:    r.ProfileCompleted,
	}
}

type sponsorProfileRequest struct {
	CompanyName           string   `json:"companyName"`
	ContactName           string   `json:"contactName"`
	Location              string   `json:"location"`
	Bio                   string   `json:"bio"`
	InvestmentRangeMin    float64  `json:"investmentRangeMin"`
	InvestmentRangeMax    float64  `json:"investmentRangeMax"`
	PreferredFundingTypes []string `json:"preferredFundingTypes"`
	Industries            []string `json:"industries"`
	ProfileCompleted      bool     `json:"profileCompleted"`
}

func (r sponsorProfileRequest) toInput() service.SponsorProfileInput {
	return service.SponsorProfileInput{
		CompanyName:           r.CompanyName,
		ContactName:           r.ContactName,
		Location:              r.Location,
		Bio:                   r.Bio,
		InvestmentRangeMin:    r.InvestmentRangeMin,
		InvestmentRangeMax:    r.InvestmentRangeMax,
		PreferredFundingTypes: r.PreferredFundingTypes,
		Industries:            r.Industries,
		ProfileCompleted:      r.ProfileCompleted,
	}
}

type preferencesRequest struct {
	EmailNotifications []string `json:"emailNotifications"`
	PrivacySettings    []string `json:"privacySettings"`
}

func (r preferencesRequest) toInput() service.PreferencesInput {
	return service.PreferencesInput{
		EmailNotifications: r.EmailNotifications,
		PrivacySettings:    r.PrivacySettings,
	}
}

// saveProfileRequest accepts both profile shapes; the fields matching the
// caller's user type are used.
type saveProfileRequest struct {
	FullName            string   `json:"fullName"`
	Location            string   `json:"location"`
	Bio                 string   `json:"bio"`
	Goal                string   `json:"goal"`
	ExpectedDurationMin int      `json:"expectedDurationMin"`
	ExpectedDurationMax int      `json:"expectedDurationMax"`
	WeeklyNeed          float64  `json:"weeklyNeed"`
	Skills              string   `json:"skills"`
	Education           string   `json:"education"`
	FundingTypes        []string `json:"fundingTypes"`

	CompanyName           string   `json:"companyName"`
	ContactName           string   `json:"contactName"`
	InvestmentRangeMin    float64  `json:"investmentRangeMin"`
	InvestmentRangeMax    float64  `json:"investmentRangeMax"`
	PreferredFundingTypes []string `json:"preferredFundingTypes"`
	Industries            []string `json:"industries"`

	ProfileCompleted bool `json:"profileCompleted"`
}

func (r saveProfileRequest) dreamerInput() service.DreamerProfileInput {
	return service.DreamerProfileInput{
		FullName:            r.FullName,
		Location:            r.Location,
		Bio:                 r.Bio,
		Goal:                r.Goal,
		ExpectedDurationMin: r.ExpectedDurationMin,
		ExpectedDurationMax: r.ExpectedDurationMax,
		WeeklyNeed:          r.WeeklyNeed,
		Skills:              r.Skills,
		Education:           r.Education,
		FundingTypes:        r.FundingTypes,
		ProfileCompleted:    r.ProfileCompleted,
	}
}

func (r saveProfileRequest) sponsorInput() service.SponsorProfileInput {
	return service.SponsorProfileInput{
		CompanyName:           r.CompanyName,
		ContactName:           r.ContactName,
		Location:              r.Location,
		Bio:                   r.Bio,
		InvestmentRangeMin:    r.InvestmentRangeMin,
		InvestmentRangeMax:    r.InvestmentRangeMax,
		PreferredFundingTypes: r.PreferredFundingTypes,
		Industries:            r.Industries,
		ProfileCompleted:      r.ProfileCompleted,
	}
}

func (h *Handler) getProfile(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	if principal.IsDreamer() {
		profile, err := h.profiles.GetDreamerProfile(c.Request.Context(), principal)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, toDreamerProfileResponse(*profile))
		return
	}

	profile, err := h.profiles.GetSponsorProfile(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSponsorProfileResponse(*profile))
}

func (h *Handler) saveProfile(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req saveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if principal.IsDreamer() {
		profile, err := h.profiles.SaveDreamerProfile(c.Request.Context(), req.dreamerInput(), principal)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, toDreamerProfileResponse(*profile))
		return
	}

	profile, err := h.profiles.SaveSponsorProfile(c.Request.Context(), req.sponsorInput(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSponsorProfileResponse(*profile))
}

func (h *Handler) getPreferences(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	prefs, err := h.profiles.GetPreferences(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPreferencesResponse(*prefs))
}

func (h *Handler) savePreferences(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req preferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefs, err := h.profiles.SavePreferences(c.Request.Context(), req.toInput(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPreferencesResponse(*prefs))
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/k1ngsterr1/quick-notes/internal/errors"
	"github.com/k1ngsterr1/quick-notes/internal/models"
	"github.com/k1ngsterr1/quick-notes/internal/services"
)

// SettingsHandler handles user settings requests.
type SettingsHandler struct {
	settingsService services.SettingsServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// UpdateSettingsRequest represents a partial settings update.
type UpdateSettingsRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=1,max=50"`
	DarkMode      *bool    `json:"darkMode"`
	Currency      *string  `json:"currency" binding:"omitempty,iso4217"`
	RiskPerTrade  *float64 `json:"riskPerTrade" binding:"omitempty,gt=0,lte=100"`
	AccountSize   *float64 `json:"accountSize" binding:"omitempty,gte=0"`
	ShowPnLInHome *bool    `json:"showPnLInHome"`
}

// SettingsResponse wraps the user settings.
type SettingsResponse struct {
	Settings *models.UserSettings `json:"settings"`
}

// GetSettings returns the user settings.
// @Summary     Get settings
// @Description Get the user settings, storing the defaults on first use
// @Tags        settings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} SettingsResponse "Settings"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Settings: settings})
}

// UpdateSettings applies a partial settings update.
// @Summary     Update settings
// @Description Update any subset of the settings fields
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateSettingsRequest true "Fields to change"
// @Success     200 {object} SettingsResponse "Updated settings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), services.SettingsUpdate{
		Name:          req.Name,
		DarkMode:      req.DarkMode,
		Currency:      req.Currency,
		RiskPerTrade:  req.RiskPerTrade,
		AccountSize:   req.AccountSize,
		ShowPnLInHome: req.ShowPnLInHome,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Settings: settings})
}

// ToggleDarkMode flips the dark mode flag.
// @Summary     Toggle dark mode
// @Tags        settings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} SettingsResponse "Updated settings"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /settings/dark-mode [post]
func (h *SettingsHandler) ToggleDarkMode(c *gin.Context) {
	settings, err := h.settingsService.ToggleDarkMode(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Settings: settings})
}

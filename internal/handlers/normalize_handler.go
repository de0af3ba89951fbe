package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/k1ngsterr1/quick-notes/internal/errors"
	"github.com/k1ngsterr1/quick-notes/internal/models"
	"github.com/k1ngsterr1/quick-notes/internal/normalize"
)

// NormalizeHandler previews form field normalization for clients that
// format while the user types.
type NormalizeHandler struct{}

// NewNormalizeHandler creates a new NormalizeHandler.
func NewNormalizeHandler() *NormalizeHandler {
	return &NormalizeHandler{}
}

// PercentRequest is a PnL field with the kind that decides its default sign.
type PercentRequest struct {
	Text string      `json:"text" binding:"max=32"`
	Kind models.Kind `json:"kind" binding:"omitempty,record_kind"`
}

// RekindRequest is an already formatted PnL and the newly selected kind.
type RekindRequest struct {
	PnL  string      `json:"pnl" binding:"max=32"`
	Kind models.Kind `json:"kind" binding:"required,record_kind"`
}

// CurrencyRequest is a price field.
type CurrencyRequest struct {
	Text string `json:"text" binding:"max=32"`
}

// ContentRequest holds the trade form fields used to build record content.
type ContentRequest struct {
	Notes  string `json:"notes" binding:"max=10000"`
	Entry  string `json:"entry" binding:"max=32"`
	Target string `json:"target" binding:"max=32"`
	Stop   string `json:"stop" binding:"max=32"`
}

// ValueResponse holds a normalized field value.
type ValueResponse struct {
	Value string `json:"value"`
}

// ContentResponse holds synthesized trade content and, when computable,
// the reward-to-risk ratio.
type ContentResponse struct {
	Value      string `json:"value"`
	RiskReward string `json:"riskReward,omitempty"`
}

// Percent normalizes a PnL field.
// @Summary     Normalize percentage
// @Tags        normalize
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body PercentRequest true "Field value"
// @Success     200 {object} ValueResponse "Normalized value"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /normalize/percent [post]
func (h *NormalizeHandler) Percent(c *gin.Context) {
	var req PercentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.JSON(http.StatusOK, ValueResponse{Value: normalize.Percent(req.Text, req.Kind)})
}

// Rekind re-derives the PnL sign after the kind changed.
// @Summary     Re-sign percentage for a new kind
// @Tags        normalize
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RekindRequest true "PnL and new kind"
// @Success     200 {object} ValueResponse "Normalized value"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /normalize/rekind [post]
func (h *NormalizeHandler) Rekind(c *gin.Context) {
	var req RekindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.JSON(http.StatusOK, ValueResponse{Value: normalize.Rekind(req.PnL, req.Kind)})
}

// Currency normalizes a price field.
// @Summary     Normalize currency
// @Tags        normalize
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CurrencyRequest true "Field value"
// @Success     200 {object} ValueResponse "Normalized value"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /normalize/currency [post]
func (h *NormalizeHandler) Currency(c *gin.Context) {
	var req CurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.JSON(http.StatusOK, ValueResponse{Value: normalize.Currency(req.Text)})
}

// Content builds trade content from notes and price levels.
// @Summary     Build trade content
// @Tags        normalize
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ContentRequest true "Trade form fields"
// @Success     200 {object} ContentResponse "Content"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /normalize/content [post]
func (h *NormalizeHandler) Content(c *gin.Context) {
	var req ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	resp := ContentResponse{Value: normalize.TradeContent(req.Notes, req.Entry, req.Target, req.Stop)}
	if rr, ok := normalize.RiskReward(req.Entry, req.Target, req.Stop); ok {
		resp.RiskReward = rr.StringFixed(2)
	}
	c.JSON(http.StatusOK, resp)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/k1ngsterr1/quick-notes/internal/errors"
	"github.com/k1ngsterr1/quick-notes/internal/models"
	"github.com/k1ngsterr1/quick-notes/internal/pagination"
	"github.com/k1ngsterr1/quick-notes/internal/services"
	"github.com/k1ngsterr1/quick-notes/internal/stats"
)

const defaultRecentLimit = 3

// RecordHandler handles journal record requests.
type RecordHandler struct {
	recordService services.RecordServicer
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordService services.RecordServicer) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// ListRecordsQuery holds the list filter and page parameters.
type ListRecordsQuery struct {
	Tab   models.Tab `form:"tab" binding:"omitempty,record_tab"`
	Query string     `form:"q" binding:"max=200"`
	pagination.PageRequest
}

func (q ListRecordsQuery) filter() services.RecordFilter {
	return services.RecordFilter{Tab: q.Tab, Query: q.Query}
}

// RecentRecordsQuery holds the recent activity limit.
type RecentRecordsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

// CreateRecordRequest represents the request payload for creating a record.
// Title blankness is checked by the record service.
type CreateRecordRequest struct {
	Title   string      `json:"title" binding:"max=200"`
	Content string      `json:"content" binding:"max=10000"`
	Kind    models.Kind `json:"kind" binding:"omitempty,record_kind"`
	PnL     string      `json:"pnl" binding:"max=32"`
	Entry   string      `json:"entry" binding:"max=32"`
	Target  string      `json:"target" binding:"max=32"`
	Stop    string      `json:"stop" binding:"max=32"`
}

// RecordResponse wraps a single record.
type RecordResponse struct {
	Record *models.Record `json:"record"`
}

// RecordsResponse wraps a record list.
type RecordsResponse struct {
	Records []models.Record `json:"records"`
}

// DeleteFailedResponse is returned when a delete could not be persisted. It
// carries the durable record list so clients can resynchronize.
type DeleteFailedResponse struct {
	Error   ErrorDetail     `json:"error"`
	Records []models.Record `json:"records"`
}

// StatsResponse wraps a statistics snapshot.
type StatsResponse struct {
	Stats stats.Snapshot `json:"stats"`
}

// ListRecords handles listing journal records.
// @Summary     List records
// @Description Get a paginated, newest-first list of records filtered by tab and search query
// @Tags        records
// @Produce     json
// @Security    BearerAuth
// @Param       tab       query string false "Tab filter (all/trades/formulas/notes)"
// @Param       q         query string false "Case-insensitive search over title and content"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Record] "Paginated records"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /records [get]
func (h *RecordHandler) ListRecords(c *gin.Context) {
	var query ListRecordsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	records, err := h.recordService.List(c.Request.Context(), query.filter())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, pagination.Slice(records, query.PageRequest))
}

// RefreshRecords re-reads the journal from storage.
// @Summary     Refresh records
// @Description Re-read durable state, e.g. when the list becomes visible again
// @Tags        records
// @Produce     json
// @Security    BearerAuth
// @Param       tab query string false "Tab filter (all/trades/formulas/notes)"
// @Param       q   query string false "Case-insensitive search over title and content"
// @Success     200 {object} RecordsResponse "Records"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /records/refresh [post]
func (h *RecordHandler) RefreshRecords(c *gin.Context) {
	var query ListRecordsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	records, err := h.recordService.Refresh(c.Request.Context(), query.filter())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, RecordsResponse{Records: records})
}

// RecentRecords returns the newest records for the profile view.
// @Summary     Recent records
// @Description Get the newest records (default 3)
// @Tags        records
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Number of records (1-50, default 3)"
// @Success     200 {object} RecordsResponse "Records"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /records/recent [get]
func (h *RecordHandler) RecentRecords(c *gin.Context) {
	var query RecentRecordsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if query.Limit == 0 {
		query.Limit = defaultRecentLimit
	}

	records, err := h.recordService.Recent(c.Request.Context(), query.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, RecordsResponse{Records: records})
}

// CreateRecord handles the creation of a record.
// @Summary     Create a record
// @Description Create a note, formula or trade. Trade PnL and prices are normalized and an R:R line is appended when computable.
// @Tags        records
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateRecordRequest true "Record details"
// @Success     201 {object} RecordResponse "Record created"
// @Failure     400 {object} ErrorResponse "Invalid record"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /records [post]
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	record, err := h.recordService.Create(c.Request.Context(), services.NewRecordFields{
		Title:   req.Title,
		Content: req.Content,
		Kind:    req.Kind,
		PnL:     req.PnL,
		Entry:   req.Entry,
		Target:  req.Target,
		Stop:    req.Stop,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, RecordResponse{Record: record})
}

// DeleteRecord handles deleting a record.
// @Summary     Delete a record
// @Description Delete a record by id. Unknown ids succeed without changes. When the delete cannot be saved the durable record list is returned with the error.
// @Tags        records
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Record ID"
// @Success     200 {object} MessageResponse "Record deleted"
// @Failure     400 {object} ErrorResponse "Invalid record ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} DeleteFailedResponse "Storage error"
// @Router      /records/{id} [delete]
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	deleted, err := h.recordService.Delete(ctx, id)
	if err != nil {
		if !apperrors.IsStorage(err) {
			respondWithError(c, err)
			return
		}
		status, body := errorBody(c, err)
		if records, listErr := h.recordService.List(ctx, services.RecordFilter{}); listErr == nil {
			body["records"] = records
		}
		c.JSON(status, body)
		return
	}

	if !deleted {
		c.JSON(http.StatusOK, MessageResponse{Message: "Record not found, nothing deleted"})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Record deleted successfully"})
}

// GetStats computes performance statistics over all records.
// @Summary     Trading statistics
// @Description Win rate, average profit/loss, profit factor and best/worst trade over long and short records. profitFactor is "Infinity" when there are profits and no losses.
// @Tags        stats
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} StatsResponse "Statistics"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /stats [get]
func (h *RecordHandler) GetStats(c *gin.Context) {
	records, err := h.recordService.List(c.Request.Context(), services.RecordFilter{})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatsResponse{Stats: stats.Compute(records)})
}

package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/milldesk/milldesk-api/internal/application/service"
	"github.com/milldesk/milldesk-api/internal/presentation/http/dto/response"
)

// LoadingHandler handles loading (dispatch) HTTP requests
type LoadingHandler struct {
	loadingService *service.LoadingService
}

// NewLoadingHandler creates a new loading handler
func NewLoadingHandler(loadingService *service.LoadingService) *LoadingHandler {
	return &LoadingHandler{loadingService: loadingService}
}

// List handles listing loadings. Query parameters: customer_id, from, to
// (dates as YYYY-MM-DD).
func (h *LoadingHandler) List(c *gin.Context) {
	customerID := parseUUIDQuery(c, "customer_id")
	from := parseDateQuery(c, "from")
	to := parseDateQuery(c, "to")

	loadings, err := h.loadingService.ListLoadings(c.Request.Context(), customerID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Loadings retrieved successfully", loadings)
}

// Create handles recording a standalone loading
func (h *LoadingHandler) Create(c *gin.Context) {
	var req struct {
		CustomerID  string          `json:"customerId" binding:"required"`
		ProductName string          `json:"productName" binding:"required"`
		Quantity    decimal.Decimal `json:"quantity" binding:"required"`
		Unit        string          `json:"unit"`
		TruckNo     string          `json:"truckNo" binding:"required"`
		Driver      *string         `json:"driver"`
		Date        *time.Time      `json:"date"`
		Notes       *string         `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 400, "Invalid request body: "+err.Error())
		return
	}
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		response.ErrorWithCode(c, 400, "Invalid customer ID")
		return
	}

	input := &service.CreateLoadingInput{
		CustomerID:  customerID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		TruckNo:     req.TruckNo,
		Driver:      req.Driver,
		Notes:       req.Notes,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	loading, err := h.loadingService.CreateLoading(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Loading recorded successfully", loading)
}

// Get handles retrieving a single loading
func (h *LoadingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithCode(c, 400, "Invalid loading ID")
		return
	}

	loading, err := h.loadingService.GetLoading(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Loading retrieved successfully", loading)
}

// Delete handles deleting a loading
func (h *LoadingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithCode(c, 400, "Invalid loading ID")
		return
	}

	if err := h.loadingService.DeleteLoading(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/milldesk/milldesk-api/internal/application/service"
	"github.com/milldesk/milldesk-api/internal/presentation/http/dto/response"
)

// PaddyHandler handles paddy truck receiving HTTP requests
type PaddyHandler struct {
	paddyService *service.PaddyService
}

// NewPaddyHandler creates a new paddy handler
func NewPaddyHandler(paddyService *service.PaddyService) *PaddyHandler {
	return &PaddyHandler{paddyService: paddyService}
}

// List handles listing paddy trucks. Query parameters: supplier_id, from,
// to (dates as YYYY-MM-DD).
func (h *PaddyHandler) List(c *gin.Context) {
	supplierID := parseUUIDQuery(c, "supplier_id")
	from := parseDateQuery(c, "from")
	to := parseDateQuery(c, "to")

	trucks, err := h.paddyService.ListPaddyTrucks(c.Request.Context(), supplierID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Paddy trucks retrieved successfully", trucks)
}

// Receive handles recording a truck at the weighbridge
func (h *PaddyHandler) Receive(c *gin.Context) {
	var req struct {
		SupplierID  string          `json:"supplierId" binding:"required"`
		TruckNo     string          `json:"truckNo" binding:"required"`
		GrossWeight decimal.Decimal `json:"grossWeight" binding:"required"`
		TareWeight  decimal.Decimal `json:"tareWeight"`
		PricePerKg  decimal.Decimal `json:"pricePerKg"`
		Date        *time.Time      `json:"date"`
		Notes       *string         `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 400, "Invalid request body: "+err.Error())
		return
	}
	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		response.ErrorWithCode(c, 400, "Invalid supplier ID")
		return
	}

	input := &service.ReceivePaddyInput{
		SupplierID:  supplierID,
		TruckNo:     req.TruckNo,
		GrossWeight: req.GrossWeight,
		TareWeight:  req.TareWeight,
		PricePerKg:  req.PricePerKg,
		Notes:       req.Notes,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	truck, err := h.paddyService.ReceivePaddy(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Paddy truck recorded successfully", truck)
}

// Get handles retrieving a single receiving record
func (h *PaddyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithCode(c, 400, "Invalid paddy truck ID")
		return
	}

	truck, err := h.paddyService.GetPaddyTruck(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Paddy truck retrieved successfully", truck)
}

// Delete handles deleting a receiving record
func (h *PaddyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithCode(c, 400, "Invalid paddy truck ID")
		return
	}

	if err := h.paddyService.DeletePaddyTruck(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

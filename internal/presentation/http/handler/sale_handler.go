package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/milldesk/milldesk-api/internal/application/service"
	"github.com/milldesk/milldesk-api/internal/presentation/http/dto/response"
)

// SaleHandler handles sale HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// List handles listing sales. Query parameters: customer_id, from, to.
func (h *SaleHandler) List(c *gin.Context) {
	customerID := parseUUIDQuery(c, "customer_id")
	from := parseDateQuery(c, "from")
	to := parseDateQuery(c, "to")

	sales, err := h.saleService.ListSales(c.Request.Context(), customerID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales retrieved successfully", sales)
}

// Record handles recording a sale, which also debits the customer's ledger
func (h *SaleHandler) Record(c *gin.Context) {
	var req struct {
		CustomerID  string          `json:"customerId" binding:"required"`
		ProductName string          `json:"productName" binding:"required"`
		Quantity    decimal.Decimal `json:"quantity" binding:"required"`
		Unit        string          `json:"unit"`
		UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
		Date        *time.Time      `json:"date"`
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

	input := &service.RecordSaleInput{
		CustomerID:  customerID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		UnitPrice:   req.UnitPrice,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	sale, err := h.saleService.RecordSale(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Sale recorded successfully", sale)
}

// Get handles retrieving a single sale
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithCode(c, 400, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale retrieved successfully", sale)
}

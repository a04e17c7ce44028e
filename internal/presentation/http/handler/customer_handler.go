package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/milldesk/milldesk-api/internal/application/report"
	"github.com/milldesk/milldesk-api/internal/application/service"
	"github.com/milldesk/milldesk-api/internal/domain/enum"
	"github.com/milldesk/milldesk-api/internal/domain/query"
	"github.com/milldesk/milldesk-api/internal/presentation/http/dto/response"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing customers with in-memory filter, sort and pagination.
// Query parameters: search, state, balance (all|positive|negative|zero),
// sort_by, sort_dir, page, per_page.
func (h *CustomerHandler) List(c *gin.Context) {
	input := &service.ListCustomersInput{
		Search:        c.Query("search"),
		State:         enum.State(c.DefaultQuery("state", query.FilterAll)),
		BalanceBucket: query.BalanceBucket(c.DefaultQuery("balance", string(query.BalanceBucketAll))),
		SortField:     c.DefaultQuery("sort_by", query.CustomerSortName),
		SortDirection: query.SortDirection(c.DefaultQuery("sort_dir", string(query.SortAsc))),
		Pagination:    paginationParams(c),
	}

	result, err := h.customerService.ListCustomers(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req struct {
		Name           string          `json:"name" binding:"required"`
		Phone          *string         `json:"phone"`
		State          string          `json:"state" binding:"required"`
		OpeningBalance decimal.Decimal `json:"openingBalance"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 400, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:           req.Name,
		Phone:          req.Phone,
		State:          enum.State(req.State),
		OpeningBalance: req.OpeningBalance,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Customer created successfully", customer)
}

// Get handles retrieving a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithCode(c, 400, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer retrieved successfully", customer)
}

// Update handles partially updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithCode(c, 400, "Invalid customer ID")
		return
	}

	var req struct {
		Name  *string `json:"name"`
		Phone *string `json:"phone"`
		State *string `json:"state"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 400, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateCustomerInput{
		Name:  req.Name,
		Phone: req.Phone,
	}
	if req.State != nil {
		state := enum.State(*req.State)
		input.State = &state
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithCode(c, 400, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Stats handles the customer statistics endpoint
func (h *CustomerHandler) Stats(c *gin.Context) {
	stats, err := h.customerService.CustomerStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer statistics retrieved successfully", stats)
}

// Ledger handles listing a customer's ledger entries chronologically
func (h *CustomerHandler) Ledger(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithCode(c, 400, "Invalid customer ID")
		return
	}

	entries, err := h.customerService.GetLedger(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Ledger retrieved successfully", entries)
}

// AddLedgerEntry handles appending a ledger posting
func (h *CustomerHandler) AddLedgerEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithCode(c, 400, "Invalid customer ID")
		return
	}

	var req struct {
		Date        *time.Time      `json:"date"`
		Description string          `json:"description" binding:"required"`
		Debit       decimal.Decimal `json:"debit"`
		Credit      decimal.Decimal `json:"credit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 400, "Invalid request body: "+err.Error())
		return
	}

	input := &service.AddLedgerEntryInput{
		Description: req.Description,
		Debit:       req.Debit,
		Credit:      req.Credit,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	entry, err := h.customerService.AddLedgerEntry(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Ledger entry recorded successfully", entry)
}

// Statement handles rendering a customer's account statement as PDF
func (h *CustomerHandler) Statement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithCode(c, 400, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	entries, err := h.customerService.GetLedger(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	pdf, err := report.GenerateCustomerStatement(&report.StatementData{
		Customer: customer,
		Entries:  entries,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="statement_`+customer.ID.String()+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/milldesk/milldesk-api/internal/application/service"
	"github.com/milldesk/milldesk-api/internal/domain/enum"
	"github.com/milldesk/milldesk-api/internal/presentation/http/dto/response"
)

// BookingHandler handles booked-stock HTTP requests
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// List handles listing bookings, optionally filtered by customer_id
func (h *BookingHandler) List(c *gin.Context) {
	customerID := parseUUIDQuery(c, "customer_id")
	bookings, err := h.bookingService.ListBookings(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bookings retrieved successfully", bookings)
}

// Create handles creating a booking
func (h *BookingHandler) Create(c *gin.Context) {
	var req struct {
		CustomerID  string          `json:"customerId" binding:"required"`
		ProductName string          `json:"productName" binding:"required"`
		Quantity    decimal.Decimal `json:"quantity" binding:"required"`
		Unit        string          `json:"unit"`
		BookingDate *time.Time      `json:"bookingDate"`
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

	input := &service.CreateBookingInput{
		CustomerID:  customerID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Notes:       req.Notes,
	}
	if req.BookingDate != nil {
		input.BookingDate = *req.BookingDate
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Booking created successfully", booking)
}

// Get handles retrieving a single booking
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithCode(c, 400, "Invalid booking ID")
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Booking retrieved successfully", booking)
}

// Update handles partially updating a booking
func (h *BookingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithCode(c, 400, "Invalid booking ID")
		return
	}

	var req struct {
		ProductName *string          `json:"productName"`
		Quantity    *decimal.Decimal `json:"quantity"`
		Unit        *string          `json:"unit"`
		Status      *string          `json:"status"`
		BookingDate *time.Time       `json:"bookingDate"`
		Notes       *string          `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 400, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateBookingInput{
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		BookingDate: req.BookingDate,
		Notes:       req.Notes,
	}
	if req.Status != nil {
		status := enum.BookingStatus(*req.Status)
		input.Status = &status
	}

	booking, err := h.bookingService.UpdateBooking(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Booking updated successfully", booking)
}

// Delete handles deleting a booking
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithCode(c, 400, "Invalid booking ID")
		return
	}

	if err := h.bookingService.DeleteBooking(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Load handles recording a loading against a booking
func (h *BookingHandler) Load(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithCode(c, 400, "Invalid booking ID")
		return
	}

	var req struct {
		Quantity decimal.Decimal `json:"quantity" binding:"required"`
		TruckNo  string          `json:"truckNo" binding:"required"`
		Driver   *string         `json:"driver"`
		Date     *time.Time      `json:"date"`
		Notes    *string         `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 400, "Invalid request body: "+err.Error())
		return
	}

	input := &service.LoadBookingInput{
		Quantity: req.Quantity,
		TruckNo:  req.TruckNo,
		Driver:   req.Driver,
		Notes:    req.Notes,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	booking, err := h.bookingService.LoadBooking(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Booking loaded successfully", booking)
}

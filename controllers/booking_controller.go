package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-inventory/models"
	"hotel-inventory/services"
	"hotel-inventory/utils"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Bookings: svc}
}

type CreateBookingRequest struct {
	RoomID          uint    `json:"roomId" binding:"required"`
	GuestID         uint    `json:"guestId" binding:"required"`
	CheckInDate     string  `json:"checkInDate" binding:"required"`
	CheckOutDate    string  `json:"checkOutDate" binding:"required"`
	TotalAmount     float64 `json:"totalAmount"`
	PaidAmount      float64 `json:"paidAmount"`
	SpecialRequests string  `json:"specialRequests"`
}

type UpdateBookingRequest struct {
	TotalAmount     float64 `json:"totalAmount"`
	PaidAmount      float64 `json:"paidAmount"`
	SpecialRequests string  `json:"specialRequests"`
}

// bookingResponse carries the stored record plus the derived values the
// dashboard shows alongside it.
type bookingResponse struct {
	models.Booking
	NumberOfNights int     `json:"numberOfNights"`
	BalanceAmount  float64 `json:"balanceAmount"`
}

func toBookingResponse(b *models.Booking) bookingResponse {
	return bookingResponse{
		Booking:        *b,
		NumberOfNights: b.NumberOfNights(),
		BalanceAmount:  b.BalanceAmount(),
	}
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	checkIn, err := utils.ParseDate(payload.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDate(payload.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking := models.Booking{
		RoomID:          payload.RoomID,
		GuestID:         payload.GuestID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		TotalAmount:     payload.TotalAmount,
		PaidAmount:      payload.PaidAmount,
		SpecialRequests: payload.SpecialRequests,
	}
	if err := ctrl.Bookings.Create(&booking); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toBookingResponse(&booking))
}

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.Bookings.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.Bookings.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload UpdateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	booking, err := ctrl.Bookings.Update(id, payload.TotalAmount, payload.PaidAmount, payload.SpecialRequests)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.Bookings.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "booking deleted"})
}

// CheckInBooking handles POST /api/bookings/:id/checkin.
func (ctrl *BookingController) CheckInBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.Bookings.CheckIn(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

// CheckOutBooking handles POST /api/bookings/:id/checkout.
func (ctrl *BookingController) CheckOutBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.Bookings.CheckOut(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

// CancelBooking handles POST /api/bookings/:id/cancel.
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.Bookings.Cancel(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

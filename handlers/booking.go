package handlers

import (
	"errors"
	"net/http"

	"travelbook/services/booking"
	"travelbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes post-wizard booking operations.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

func (h *BookingHandler) bookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
	case errors.Is(err, booking.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "not your booking", "")
	case errors.Is(err, booking.ErrInvalidStatusTransition):
		utils.JSONError(c, http.StatusConflict, "booking cannot be cancelled", "")
	default:
		getLogger(c).Error("booking request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking error", err.Error())
	}
}

// ListMyBookings returns the caller's bookings, newest first.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	bookings, err := h.Svc.ListByUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBooking returns one booking owned by the caller.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Svc.GetByID(c.Request.Context(), c.GetString("userID"), c.Param("bookingID"))
	if err != nil {
		h.bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBooking cancels a confirmed booking with a reason.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Svc.Cancel(c.Request.Context(), c.GetString("userID"), c.Param("bookingID"), input.Reason)
	if err != nil {
		h.bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

package api

import (
	"errors"
	"net/http"

	reqdto "github.com/GRAMAPHENIA/resio-sub000/internal/handler/dto/request"
	resdto "github.com/GRAMAPHENIA/resio-sub000/internal/handler/dto/response"
	"github.com/GRAMAPHENIA/resio-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Create booking
// @Description Create a pending booking for a property stay
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input := usecase.CreateBookingInput{
		PropertyID: req.PropertyID,
		Contact: usecase.ContactInput{
			Name:  req.ContactName,
			Email: req.ContactEmail,
			Phone: req.ContactPhone,
		},
		Stay: usecase.StayInput{
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		},
		UserID: req.UserID,
	}

	pair, err := h.bookingUseCase.CreateBooking(c.Request.Context(), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingWithProperty(pair))
}

// @Summary Get booking
// @Description Get booking by ID together with its property
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	pair, err := h.bookingUseCase.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingWithProperty(pair))
}

// @Summary Get user bookings
// @Description List bookings by contact email or user ID
// @Tags bookings
// @Produce json
// @Param email query string false "Contact email"
// @Param user_id query string false "User ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	input := usecase.GetUserBookingsInput{}
	if email := c.Query("email"); email != "" {
		input.Email = &email
	}
	if userID := c.Query("user_id"); userID != "" {
		input.UserID = &userID
	}

	bookings, err := h.bookingUseCase.GetUserBookings(c.Request.Context(), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response := make([]*resdto.BookingResponse, len(bookings))
	for i, b := range bookings {
		response[i] = resdto.FromBooking(b)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Complete payment
// @Description Mark a pending booking as paid
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.CompletePaymentRequest true "Payment reference"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/payment [post]
func (h *BookingHandler) CompletePayment(c *gin.Context) {
	var req reqdto.CompletePaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	b, err := h.bookingUseCase.CompletePayment(c.Request.Context(), c.Param("id"), req.PaymentID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Cancel booking
// @Description Cancel a booking and compute the refund
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancellation reason"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var req reqdto.CancelBookingRequest
	// Body is optional; a missing or empty body means no reason was given.
	_ = c.ShouldBindJSON(&req)

	result, err := h.bookingUseCase.CancelBooking(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}

// @Summary Create payment preference
// @Description Create a checkout preference at the payment gateway
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 201 {object} resdto.PaymentPreferenceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/preference [post]
func (h *BookingHandler) CreatePaymentPreference(c *gin.Context) {
	pref, err := h.bookingUseCase.CreatePaymentPreference(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPaymentPreference(pref))
}

// respondBookingError maps usecase errors onto HTTP statuses. Error message
// text is rendered verbatim; the booking UI shows it to the guest as is.
func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrBookingNotFound),
		errors.Is(err, usecase.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrPropertyIDRequired),
		errors.Is(err, usecase.ErrContactNameRequired),
		errors.Is(err, usecase.ErrContactEmailRequired),
		errors.Is(err, usecase.ErrStartDateRequired),
		errors.Is(err, usecase.ErrEndDateRequired),
		errors.Is(err, usecase.ErrBookingIDRequired),
		errors.Is(err, usecase.ErrPaymentIDRequired),
		errors.Is(err, usecase.ErrLookupKeyRequired),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrPropertyNotAvailable),
		errors.Is(err, usecase.ErrRecentPendingBooking),
		errors.Is(err, usecase.ErrPaymentNotAllowed),
		errors.Is(err, usecase.ErrCancellationNotAllowed),
		errors.Is(err, usecase.ErrPaymentNotApproved):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		if isDomainError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

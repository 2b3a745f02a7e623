package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ellka-ua/tour-agency-api/internal/api/metrics"
	"github.com/ellka-ua/tour-agency-api/internal/core/ports"
)

type BookingHandler struct {
	bookingService ports.BookingService
}

func NewBookingHandler(bookingService ports.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

type bookingRequest struct {
	TourID int64 `json:"tour_id" validate:"required,gt=0"`
	// BookingDate is optional; today is used when absent.
	BookingDate string `json:"booking_date,omitempty"`
}

// Create books a tour for the authenticated client.
//
// @Summary      Create booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      409   {object}  map[string]string
// @Router       /v1/booking [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.BookingInput{TourID: req.TourID}
	if req.BookingDate != "" {
		date, err := time.Parse("2006-01-02", req.BookingDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "booking_date must be YYYY-MM-DD")
		}
		input.BookingDate = date
	}

	booking, err := h.bookingService.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, booking)
}

// GetByClient lists a client's bookings.
//
// @Summary      Bookings by client
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path  int  true  "Client id"
// @Success      200  {array}  domain.Booking
// @Router       /v1/booking/client/{clientId} [get]
func (h *BookingHandler) GetByClient(c echo.Context) error {
	id, err := pathID(c, "clientId")
	if err != nil {
		return err
	}
	bookings, err := h.bookingService.GetByClientID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// GetByTour lists a tour's bookings.
//
// @Summary      Bookings by tour
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        tourId  path  int  true  "Tour id"
// @Success      200  {array}  domain.Booking
// @Router       /v1/booking/tour/{tourId} [get]
func (h *BookingHandler) GetByTour(c echo.Context) error {
	id, err := pathID(c, "tourId")
	if err != nil {
		return err
	}
	bookings, err := h.bookingService.GetByTourID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// StatisticsByMonth returns booking counts per month name.
//
// @Summary      Booking statistics by month
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Router       /v1/booking/statisticsByMonth [get]
func (h *BookingHandler) StatisticsByMonth(c echo.Context) error {
	stats, err := h.bookingService.StatisticsByMonth(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Delete cancels a booking.
//
// @Summary      Delete booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Booking id"
// @Success      200  {object}  domain.Booking
// @Router       /v1/booking/{id} [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	booking, err := h.bookingService.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ellka-ua/tour-agency-api/internal/core/ports"
)

type TourHandler struct {
	tourService ports.TourService
}

func NewTourHandler(tourService ports.TourService) *TourHandler {
	return &TourHandler{tourService: tourService}
}

type tourRequest struct {
	Name      string  `json:"name" validate:"required"`
	CountryID int64   `json:"country_id" validate:"required,gt=0"`
	StartDate string  `json:"start_date" validate:"required"`
	EndDate   string  `json:"end_date" validate:"required"`
	Price     float64 `json:"price" validate:"required,gt=0"`
	GuideID   int64   `json:"guide_id" validate:"required,gt=0"`
}

func (r tourRequest) toInput() (ports.TourInput, error) {
	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return ports.TourInput{}, echo.NewHTTPError(http.StatusBadRequest, "start_date must be YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", r.EndDate)
	if err != nil {
		return ports.TourInput{}, echo.NewHTTPError(http.StatusBadRequest, "end_date must be YYYY-MM-DD")
	}
	return ports.TourInput{
		Name:      r.Name,
		CountryID: r.CountryID,
		StartDate: start,
		EndDate:   end,
		Price:     r.Price,
		GuideID:   r.GuideID,
	}, nil
}

// pathID parses the named numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// GetAll lists every tour.
//
// @Summary      List tours
// @Tags         tours
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Tour
// @Router       /v1/tour [get]
func (h *TourHandler) GetAll(c echo.Context) error {
	tours, err := h.tourService.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tours)
}

// Create registers a new tour.
//
// @Summary      Create tour
// @Tags         tours
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      tourRequest  true  "Tour details"
// @Success      201   {object}  domain.Tour
// @Router       /v1/tour [post]
func (h *TourHandler) Create(c echo.Context) error {
	var req tourRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := req.toInput()
	if err != nil {
		return err
	}
	tour, err := h.tourService.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, tour)
}

// Update replaces the tour's fields.
//
// @Summary      Update tour
// @Tags         tours
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Tour id"
// @Param        body  body      tourRequest  true  "Tour details"
// @Success      200   {object}  domain.Tour
// @Router       /v1/tour/{id} [put]
func (h *TourHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req tourRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := req.toInput()
	if err != nil {
		return err
	}
	tour, err := h.tourService.Update(c.Request().Context(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tour)
}

// Delete removes a tour.
//
// @Summary      Delete tour
// @Tags         tours
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Tour id"
// @Success      200  {object}  domain.Tour
// @Router       /v1/tour/{id} [delete]
func (h *TourHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	tour, err := h.tourService.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tour)
}

// GetByCountry lists tours visiting a country.
//
// @Summary      Tours by country
// @Tags         tours
// @Produce      json
// @Security     BearerAuth
// @Param        countryId  path  int  true  "Country id"
// @Success      200  {array}  domain.Tour
// @Router       /v1/tour/country/{countryId} [get]
func (h *TourHandler) GetByCountry(c echo.Context) error {
	id, err := pathID(c, "countryId")
	if err != nil {
		return err
	}
	tours, err := h.tourService.GetByCountryID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tours)
}

// GetByGuide lists tours run by a guide.
//
// @Summary      Tours by guide
// @Tags         tours
// @Produce      json
// @Security     BearerAuth
// @Param        guideId  path  int  true  "Guide id"
// @Success      200  {array}  domain.Tour
// @Router       /v1/tour/guide/{guideId} [get]
func (h *TourHandler) GetByGuide(c echo.Context) error {
	id, err := pathID(c, "guideId")
	if err != nil {
		return err
	}
	tours, err := h.tourService.GetByGuideID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tours)
}

// MostPopular lists booked tours ordered by booking count.
//
// @Summary      Most popular tours
// @Tags         tours
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Tour
// @Router       /v1/tour/popular [get]
func (h *TourHandler) MostPopular(c echo.Context) error {
	tours, err := h.tourService.MostPopular(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tours)
}

// Profit returns price times booking count for a tour.
//
// @Summary      Tour profit
// @Tags         tours
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Tour id"
// @Success      200  {number}  float64
// @Router       /v1/tour/profit/{id} [get]
func (h *TourHandler) Profit(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	profit, err := h.tourService.Profit(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profit)
}

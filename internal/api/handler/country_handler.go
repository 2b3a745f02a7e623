package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ellka-ua/tour-agency-api/internal/core/ports"
)

type CountryHandler struct {
	countryService ports.CountryService
}

func NewCountryHandler(countryService ports.CountryService) *CountryHandler {
	return &CountryHandler{countryService: countryService}
}

type countryRequest struct {
	Name   string `json:"name" validate:"required"`
	Region string `json:"region" validate:"required"`
}

// GetAll lists every country.
//
// @Summary      List countries
// @Tags         countries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Country
// @Router       /v1/country [get]
func (h *CountryHandler) GetAll(c echo.Context) error {
	countries, err := h.countryService.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countries)
}

// Create registers a new destination country.
//
// @Summary      Create country
// @Tags         countries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      countryRequest  true  "Country details"
// @Success      201   {object}  domain.Country
// @Router       /v1/country [post]
func (h *CountryHandler) Create(c echo.Context) error {
	var req countryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	country, err := h.countryService.Create(c.Request().Context(), req.Name, req.Region)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, country)
}

// Delete removes a country.
//
// @Summary      Delete country
// @Tags         countries
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Country id"
// @Success      200  {object}  domain.Country
// @Router       /v1/country/{id} [delete]
func (h *CountryHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	country, err := h.countryService.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, country)
}

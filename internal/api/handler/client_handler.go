package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ellka-ua/tour-agency-api/internal/core/ports"
)

type ClientHandler struct {
	clientService ports.ClientService
}

func NewClientHandler(clientService ports.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

type clientCreateRequest struct {
	Name           string `json:"name" validate:"required"`
	PassportNumber string `json:"passport_number" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
}

type clientUpdateRequest struct {
	Name           string `json:"name,omitempty"`
	PassportNumber string `json:"passport_number,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

// GetAll lists every client profile.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Client
// @Router       /v1/client [get]
func (h *ClientHandler) GetAll(c echo.Context) error {
	clients, err := h.clientService.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Create registers a client profile for an existing account.
//
// @Summary      Create client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      clientCreateRequest  true  "Client details"
// @Success      201   {object}  domain.Client
// @Router       /v1/client [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req clientCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.clientService.Create(c.Request().Context(), ports.ClientInput{
		Name:           req.Name,
		PassportNumber: req.PassportNumber,
		Phone:          req.Phone,
		Email:          req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

// Update modifies the client profile linked to the given user id.
//
// @Summary      Update client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "User id of the client"
// @Param        body  body      clientUpdateRequest  true  "Fields to change"
// @Success      200   {object}  domain.Client
// @Router       /v1/client/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req clientUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	client, err := h.clientService.Update(c.Request().Context(), id, ports.ClientInput{
		Name:           req.Name,
		PassportNumber: req.PassportNumber,
		Phone:          req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Delete removes a client profile and its account.
//
// @Summary      Delete client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Client id"
// @Success      200  {object}  domain.Client
// @Router       /v1/client/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	client, err := h.clientService.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// GetByCountry lists clients who booked tours visiting a country.
//
// @Summary      Clients by country
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        countryId  path  int  true  "Country id"
// @Success      200  {array}  domain.Client
// @Router       /v1/client/country/{countryId} [get]
func (h *ClientHandler) GetByCountry(c echo.Context) error {
	id, err := pathID(c, "countryId")
	if err != nil {
		return err
	}
	clients, err := h.clientService.GetByCountryID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Me returns the client profile of the authenticated user.
//
// @Summary      Current client profile
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Client
// @Router       /v1/client/me [get]
func (h *ClientHandler) Me(c echo.Context) error {
	client, err := h.clientService.Current(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

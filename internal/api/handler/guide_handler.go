package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ellka-ua/tour-agency-api/internal/core/ports"
)

type GuideHandler struct {
	guideService ports.GuideService
}

func NewGuideHandler(guideService ports.GuideService) *GuideHandler {
	return &GuideHandler{guideService: guideService}
}

type guideRequest struct {
	Name     string `json:"name" validate:"required"`
	Language string `json:"language" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// GetAll lists every guide profile.
//
// @Summary      List guides
// @Tags         guides
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Guide
// @Router       /v1/guide [get]
func (h *GuideHandler) GetAll(c echo.Context) error {
	guides, err := h.guideService.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, guides)
}

// Create registers a guide profile for an existing account.
//
// @Summary      Create guide
// @Tags         guides
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      guideRequest  true  "Guide details"
// @Success      201   {object}  domain.Guide
// @Router       /v1/guide [post]
func (h *GuideHandler) Create(c echo.Context) error {
	var req guideRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	guide, err := h.guideService.Create(c.Request().Context(), ports.GuideInput{
		Name:     req.Name,
		Language: req.Language,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, guide)
}

// Update modifies a guide profile.
//
// @Summary      Update guide
// @Tags         guides
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Guide id"
// @Param        body  body      guideRequest  true  "Guide details"
// @Success      200   {object}  domain.Guide
// @Router       /v1/guide/{id} [put]
func (h *GuideHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req guideRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	guide, err := h.guideService.Update(c.Request().Context(), id, ports.GuideInput{
		Name:     req.Name,
		Language: req.Language,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, guide)
}

// Delete removes a guide profile and its account.
//
// @Summary      Delete guide
// @Tags         guides
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Guide id"
// @Success      200  {object}  domain.Guide
// @Router       /v1/guide/{id} [delete]
func (h *GuideHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	guide, err := h.guideService.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, guide)
}

// Me returns the guide profile of the authenticated user.
//
// @Summary      Current guide profile
// @Tags         guides
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Guide
// @Router       /v1/guide/me [get]
func (h *GuideHandler) Me(c echo.Context) error {
	guide, err := h.guideService.Current(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, guide)
}

package main

import (
	"errors"
	"net/http"

	"github.com/Magneto-Freelance/magneto-freelance-back/internal/model"
	"github.com/Magneto-Freelance/magneto-freelance-back/internal/services"

	"github.com/labstack/echo/v4"
)

type createOfferRequest struct {
	Title       string `json:"title"`
	Employer    string `json:"employer"`
	Description string `json:"description"`
	Skills      string `json:"skills"`
	Salary      string `json:"salary"`
}

func registerOfferRoutes(api *echo.Group, osvc *services.OfferService) {
	api.POST("/offers", func(c echo.Context) error {
		req := new(createOfferRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		created, err := osvc.Publish(c.Request().Context(), &model.Offer{
			Title:       req.Title,
			Employer:    req.Employer,
			Description: req.Description,
			Skills:      req.Skills,
			Salary:      req.Salary,
		})
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "service unavailable"})
		}
		return c.JSON(http.StatusCreated, created)
	})

	// GET /offers?search= filters by title, case-insensitive.
	api.GET("/offers", func(c echo.Context) error {
		list, err := osvc.List(c.Request().Context(), c.QueryParam("search"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list offers"})
		}
		return c.JSON(http.StatusOK, list)
	})
}

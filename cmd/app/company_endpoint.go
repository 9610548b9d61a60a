package main

import (
	"errors"
	"net/http"

	"github.com/Magneto-Freelance/magneto-freelance-back/internal/services"

	"github.com/labstack/echo/v4"
)

type createCompanyRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerCompanyRoutes(api *echo.Group, cs *services.CompanyService) {
	api.POST("/companies", func(c echo.Context) error {
		req := new(createCompanyRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		created, err := cs.Register(c.Request().Context(), req.Name, req.Username, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "service unavailable"})
		}
		return c.JSON(http.StatusCreated, created)
	})

	api.GET("/companies", func(c echo.Context) error {
		list, err := cs.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list companies"})
		}
		return c.JSON(http.StatusOK, echo.Map{"companies": list})
	})
}

package main

import (
	"errors"
	"net/http"

	"github.com/Magneto-Freelance/magneto-freelance-back/internal/services"

	"github.com/labstack/echo/v4"
)

type createPostulantRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerPostulantRoutes(api *echo.Group, ps *services.PostulantService) {
	// POST /postulants — register a job seeker; the password is hashed
	// before it ever reaches the store.
	api.POST("/postulants", func(c echo.Context) error {
		req := new(createPostulantRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		created, err := ps.Register(c.Request().Context(), req.Name, req.Username, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			// store fault: never a client error, never raw driver text
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "service unavailable"})
		}
		return c.JSON(http.StatusCreated, created)
	})

	api.GET("/postulants", func(c echo.Context) error {
		list, err := ps.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list postulants"})
		}
		return c.JSON(http.StatusOK, echo.Map{"postulants": list})
	})
}

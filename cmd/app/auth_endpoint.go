package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/Magneto-Freelance/magneto-freelance-back/internal/middleware"
	"github.com/Magneto-Freelance/magneto-freelance-back/internal/model"
	"github.com/Magneto-Freelance/magneto-freelance-back/internal/services"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Type     string `json:"type"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginHandler authenticates and, only on success, issues a bearer token.
// Unknown email and wrong password produce the same 401; a store fault is a
// 503 and never reuses the 401 path.
func loginHandler(authSvc *services.AuthService, tokens *middleware.JWT) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "invalid request",
			})
		}

		kind := model.PrincipalKind(req.Type)
		if !kind.Valid() {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "unknown principal type",
			})
		}

		p, err := authSvc.Authenticate(c.Request().Context(), kind, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrStoreUnavailable) {
				return c.JSON(http.StatusServiceUnavailable, echo.Map{
					"error": "service unavailable",
				})
			}
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"error": "incorrect email or password",
			})
		}

		token, err := tokens.IssueToken(p.Email, p.Kind, time.Now())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "could not create token",
			})
		}

		return c.JSON(http.StatusOK, echo.Map{
			"access_token": token,
			"token_type":   "bearer",
		})
	}
}

// meHandler returns the authenticated subject's token claims
func meHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"email": claims.Subject.Email,
			"type":  claims.Subject.Kind,
			"exp":   claims.ExpiresAt,
		})
	}
}

func registerAuthRoutes(api *echo.Group, authSvc *services.AuthService, tokens *middleware.JWT) {
	api.POST("/login", loginHandler(authSvc, tokens))

	protected := api.Group("")
	protected.Use(tokens.Middleware())
	protected.GET("/me", meHandler())
}

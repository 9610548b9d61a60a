package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/Magneto-Freelance/magneto-freelance-back/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenTTL is how long an issued access token stays valid. There is no
// revocation; expiry is the only way a token dies.
const TokenTTL = 7 * 24 * time.Hour

// Claims defines the JWT payload: who logged in and as which kind.
type Claims struct {
	Subject TokenSubject `json:"sub"`
	jwt.RegisteredClaims
}

type TokenSubject struct {
	Email string              `json:"email"`
	Kind  model.PrincipalKind `json:"type"`
}

// JWT signs and verifies access tokens with a shared HS256 secret. It is
// constructed once at startup from config; tokens signed under a different
// secret never verify.
type JWT struct {
	secret []byte
	ttl    time.Duration
}

func NewJWT(secret []byte) *JWT {
	return &JWT{secret: secret, ttl: TokenTTL}
}

// IssueToken signs a token for the given subject, valid for TokenTTL from
// issuedAt. It performs no authentication itself.
func (j *JWT) IssueToken(email string, kind model.PrincipalKind, issuedAt time.Time) (string, error) {
	claims := &Claims{
		Subject: TokenSubject{Email: email, Kind: kind},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(j.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(j.secret)
}

// ParseToken verifies the signature and expiry and returns the claims.
func (j *JWT) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return j.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// Middleware returns an Echo middleware that validates the Bearer token and
// stashes its claims in the request context.
func (j *JWT) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if auth == "" {
				return unauthorized(c, "missing authorization header")
			}
			parts := strings.Fields(auth)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return unauthorized(c, "invalid authorization header")
			}
			claims, err := j.ParseToken(parts[1])
			if err != nil {
				return unauthorized(c, "invalid or expired token")
			}
			c.Set("auth_claims", claims)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context, msg string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return c.JSON(http.StatusUnauthorized, echo.Map{"error": msg})
}

// GetClaims extracts the claims set by Middleware, or nil.
func GetClaims(c echo.Context) *Claims {
	v := c.Get("auth_claims")
	if v == nil {
		return nil
	}
	if cl, ok := v.(*Claims); ok {
		return cl
	}
	return nil
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Magneto-Freelance/magneto-freelance-back/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse_RoundTrip(t *testing.T) {
	j := NewJWT([]byte("super-secret"))
	issuedAt := time.Now()

	tok, err := j.IssueToken("a@b.com", model.KindPostulant, issuedAt)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := j.ParseToken(tok)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", claims.Subject.Email)
	require.Equal(t, model.KindPostulant, claims.Subject.Kind)
	require.WithinDuration(t, issuedAt.Add(TokenTTL), claims.ExpiresAt.Time, time.Second)
}

func TestParseToken_Expired(t *testing.T) {
	j := NewJWT([]byte("super-secret"))

	// issued far enough back that the whole TTL has elapsed
	tok, err := j.IssueToken("a@b.com", model.KindPostulant, time.Now().Add(-TokenTTL-time.Minute))
	require.NoError(t, err)

	_, err = j.ParseToken(tok)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseToken_WrongSecret(t *testing.T) {
	j := NewJWT([]byte("right-secret"))
	tok, err := j.IssueToken("a@b.com", model.KindCompany, time.Now())
	require.NoError(t, err)

	other := NewJWT([]byte("wrong-secret"))
	_, err = other.ParseToken(tok)
	require.Error(t, err)
}

func TestParseToken_Malformed(t *testing.T) {
	j := NewJWT([]byte("k"))
	_, err := j.ParseToken("not.a.jwt")
	require.Error(t, err)
}

func TestMiddleware_SetsClaims(t *testing.T) {
	j := NewJWT([]byte("super-secret"))
	tok, err := j.IssueToken("a@b.com", model.KindPostulant, time.Now())
	require.NoError(t, err)

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		claims := GetClaims(c)
		require.NotNil(t, claims)
		return c.String(http.StatusOK, claims.Subject.Email)
	}, j.Middleware())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "a@b.com", rec.Body.String())
}

func TestMiddleware_RejectsMissingAndBadTokens(t *testing.T) {
	j := NewJWT([]byte("super-secret"))

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, j.Middleware())

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
		})
	}
}

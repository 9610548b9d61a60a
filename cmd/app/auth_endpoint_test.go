package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Magneto-Freelance/magneto-freelance-back/internal/middleware"
	"github.com/Magneto-Freelance/magneto-freelance-back/internal/model"
	"github.com/Magneto-Freelance/magneto-freelance-back/internal/repository"
	"github.com/Magneto-Freelance/magneto-freelance-back/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	principals map[string]*model.Principal
	err        error
}

func (m *memoryStore) FindByKindAndEmail(ctx context.Context, kind model.PrincipalKind, email string) (*model.Principal, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.principals[string(kind)+"|"+email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func newLoginApp(t *testing.T, store *memoryStore) *echo.Echo {
	t.Helper()
	authSvc := services.NewAuthService(store)
	tokens := middleware.NewJWT([]byte("test-secret"))

	e := echo.New()
	registerAuthRoutes(e.Group(""), authSvc, tokens)
	return e
}

func registeredPostulant(t *testing.T, email, password string) *memoryStore {
	t.Helper()
	authSvc := services.NewAuthService(nil)
	hash, err := authSvc.HashPassword(password)
	require.NoError(t, err)
	return &memoryStore{principals: map[string]*model.Principal{
		"postulant|" + email: {
			Kind:         model.KindPostulant,
			Email:        email,
			PasswordHash: hash,
		},
	}}
}

func postLogin(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLogin_Success(t *testing.T) {
	e := newLoginApp(t, registeredPostulant(t, "a@b.com", "secret123"))

	rec := postLogin(e, `{"type":"postulant","email":"a@b.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body["access_token"])
	require.Equal(t, "bearer", body["token_type"])
}

func TestLogin_WrongPassword(t *testing.T) {
	e := newLoginApp(t, registeredPostulant(t, "a@b.com", "secret123"))

	rec := postLogin(e, `{"type":"postulant","email":"a@b.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotContains(t, body, "access_token")
}

func TestLogin_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	e := newLoginApp(t, registeredPostulant(t, "a@b.com", "secret123"))

	recUnknown := postLogin(e, `{"type":"postulant","email":"nobody@x.com","password":"secret123"}`)
	recWrongPw := postLogin(e, `{"type":"postulant","email":"a@b.com","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, recUnknown.Code)
	require.Equal(t, recWrongPw.Code, recUnknown.Code)
	require.JSONEq(t, recWrongPw.Body.String(), recUnknown.Body.String())
}

func TestLogin_StoreDownIsNot401(t *testing.T) {
	store := &memoryStore{err: errors.New("server selection timeout")}
	e := newLoginApp(t, store)

	rec := postLogin(e, `{"type":"postulant","email":"a@b.com","password":"secret123"}`)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLogin_UnknownType(t *testing.T) {
	e := newLoginApp(t, registeredPostulant(t, "a@b.com", "secret123"))

	rec := postLogin(e, `{"type":"admin","email":"a@b.com","password":"secret123"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMe_WithFreshToken(t *testing.T) {
	e := newLoginApp(t, registeredPostulant(t, "a@b.com", "secret123"))

	rec := postLogin(e, `{"type":"postulant","email":"a@b.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var login map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+login["access_token"])
	meRec := httptest.NewRecorder()
	e.ServeHTTP(meRec, req)

	require.Equal(t, http.StatusOK, meRec.Code)
	var me map[string]any
	require.NoError(t, json.Unmarshal(meRec.Body.Bytes(), &me))
	require.Equal(t, "a@b.com", me["email"])
	require.Equal(t, "postulant", me["type"])
}

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerforge/resume-tailor/internal/types"
)

func newTestAuthHandler() *AuthHandler {
	return NewAuthHandler(newTestUserService(newStubUserStore()), newTestJWTService("test-secret"))
}

func TestRegisterHandlerReturnsTokenAndUser(t *testing.T) {
	h := newTestAuthHandler()

	body := `{"name":"Jordan","email":"jordan@example.com","password":"correct-horse"}`
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest("POST", "/auth/register", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "jordan@example.com", resp.User.Email)
}

func TestRegisterHandlerRejectsShortPassword(t *testing.T) {
	h := newTestAuthHandler()

	body := `{"name":"Jordan","email":"jordan@example.com","password":"short"}`
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest("POST", "/auth/register", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterHandlerRejectsInvalidJSON(t *testing.T) {
	h := newTestAuthHandler()

	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest("POST", "/auth/register", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginHandlerRoundTrip(t *testing.T) {
	h := newTestAuthHandler()

	register := `{"name":"Jordan","email":"jordan@example.com","password":"correct-horse"}`
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest("POST", "/auth/register", strings.NewReader(register)))
	require.Equal(t, http.StatusCreated, rec.Code)

	login := `{"email":"jordan@example.com","password":"correct-horse"}`
	rec = httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest("POST", "/auth/login", strings.NewReader(login)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp types.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)
}

func TestLoginHandlerWrongPassword(t *testing.T) {
	h := newTestAuthHandler()

	register := `{"name":"Jordan","email":"jordan@example.com","password":"correct-horse"}`
	h.Register(httptest.NewRecorder(), httptest.NewRequest("POST", "/auth/register", strings.NewReader(register)))

	login := `{"email":"jordan@example.com","password":"wrong-horse"}`
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest("POST", "/auth/login", strings.NewReader(login)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

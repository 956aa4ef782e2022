package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoUser(t *testing.T, got **uuid.UUID, found *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := UserIDFromContext(r.Context()); ok {
			*got = &id
			*found = true
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_ValidHeader(t *testing.T) {
	var got *uuid.UUID
	var found bool
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(UserIDHeader, userID.String())
	rec := httptest.NewRecorder()

	Auth(echoUser(t, &got, &found)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, found)
	assert.Equal(t, userID, *got)
}

func TestAuth_MissingHeader(t *testing.T) {
	var got *uuid.UUID
	var found bool

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	Auth(echoUser(t, &got, &found)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, found)
}

func TestAuth_MalformedHeader(t *testing.T) {
	var got *uuid.UUID
	var found bool

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(UserIDHeader, "42")
	rec := httptest.NewRecorder()

	Auth(echoUser(t, &got, &found)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, found)
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	var got *uuid.UUID
	var found bool

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	OptionalAuth(echoUser(t, &got, &found)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, found)
}

func TestOptionalAuth_ValidHeaderEnriches(t *testing.T) {
	var got *uuid.UUID
	var found bool
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(UserIDHeader, userID.String())
	rec := httptest.NewRecorder()

	OptionalAuth(echoUser(t, &got, &found)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, found)
	assert.Equal(t, userID, *got)
}

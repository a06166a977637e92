package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

type stubClaims struct{ id uuid.UUID }

func (c *stubClaims) GetOwnerID() uuid.UUID { return c.id }

type stubValidator struct {
	id  uuid.UUID
	err error
}

func (v *stubValidator) ValidateToken(token string) (OwnerIDGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return &stubClaims{id: v.id}, nil
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	handler := Auth(&stubValidator{id: uuid.New()})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/experiences", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	tests := []string{"token-without-scheme", "Basic abc", "Bearer", "Bearer a b"}
	for _, header := range tests {
		t.Run(header, func(t *testing.T) {
			handler := Auth(&stubValidator{id: uuid.New()})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler should not be reached")
			}))

			req := httptest.NewRequest("GET", "/experiences", nil)
			req.Header.Set("Authorization", header)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	handler := Auth(&stubValidator{err: errors.New("expired")})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest("GET", "/experiences", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAuthAddsOwnerIDToContext(t *testing.T) {
	ownerID := uuid.New()
	var got uuid.UUID
	handler := Auth(&stubValidator{id: ownerID})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetOwnerID(r)
		if err != nil {
			t.Fatalf("GetOwnerID: %v", err)
		}
		got = id
	}))

	req := httptest.NewRequest("GET", "/experiences", nil)
	req.Header.Set("Authorization", "bearer good-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got != ownerID {
		t.Errorf("expected %s, got %s", ownerID, got)
	}
}

func TestGetOwnerIDMissing(t *testing.T) {
	if _, err := GetOwnerID(httptest.NewRequest("GET", "/", nil)); err == nil {
		t.Error("expected error for request without owner ID")
	}
}

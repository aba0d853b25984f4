package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/storefront/storefront-api/internal/core/domain"
)

type stubSessionService struct {
	loginFn func(ctx context.Context, email, password string) (*domain.User, error)
	current *domain.User
	logouts int
}

func (s *stubSessionService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubSessionService) Logout(context.Context) error {
	s.logouts++
	s.current = nil
	return nil
}

func (s *stubSessionService) Current(context.Context) (*domain.User, error) {
	return s.current, nil
}

func (s *stubSessionService) IsAuthenticated(context.Context) bool {
	return s.current != nil
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			if email != "admin@example.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return &domain.User{ID: "1", Email: email, Name: "Admin User", Role: domain.RoleAdmin}, nil
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"anything"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] == "" {
		t.Fatalf("expected token in response")
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["role"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"ghost@example.com","password":"x"}`)
	_ = h.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "login failed" {
		t.Fatalf("failure reason must not leak, got %q", resp["error"])
	}
}

func TestAuthHandler_Login_RejectsBadPayload(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"not-an-email","password":"x"}`)
	_ = h.Login(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid email, got %d", rec.Code)
	}

	c, rec = newTestContext(t, http.MethodPost, "/auth/login", "not-json")
	_ = h.Login(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	stub := &stubSessionService{
		current: &domain.User{ID: "1", Role: domain.RoleAdmin},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.logouts != 1 {
		t.Fatalf("expected one logout call, got %d", stub.logouts)
	}

	// Logging out again is still a 200, not an error.
	c, rec = newTestContext(t, http.MethodPost, "/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("repeated logout error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on repeated logout, got %d", rec.Code)
	}
}

func TestAuthHandler_Session(t *testing.T) {
	stub := &stubSessionService{
		current: &domain.User{ID: "2", Email: "user@example.com", Role: domain.RoleUser},
		loginFn: func(context.Context, string, string) (*domain.User, error) { return nil, nil },
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	c, rec := newTestContext(t, http.MethodGet, "/auth/session", "")
	if err := h.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["authenticated"] != true {
		t.Fatalf("expected authenticated session: %+v", resp)
	}

	stub.current = nil
	c, rec = newTestContext(t, http.MethodGet, "/auth/session", "")
	if err := h.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["authenticated"] != false {
		t.Fatalf("expected anonymous session: %+v", resp)
	}
}

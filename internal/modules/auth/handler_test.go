package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jasri-space/core/internal/config"
	"github.com/jasri-space/core/internal/middleware"
	"github.com/jasri-space/core/internal/pkg/jwt"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, _ := newTestService(t)
	cfg := &config.AppConfig{
		Env:   "development",
		Admin: config.AdminBoot{Username: "admin", Password: "admin123"},
	}

	r := gin.New()
	NewHandler(svc, cfg).RegisterRoutes(r, middleware.RequireAuth())
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.CookieName {
			return c
		}
	}
	return nil
}

func TestLoginSetsCookie(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/login", `{"username":"admin","password":"admin123"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	c := sessionCookie(w)
	if c == nil || c.Value == "" {
		t.Fatal("session cookie not set")
	}
	if !c.HttpOnly {
		t.Error("cookie not HttpOnly")
	}
	if _, err := jwt.Parse(c.Value); err != nil {
		t.Fatalf("cookie token invalid: %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/login", `{"username":"admin","password":"nope"}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if sessionCookie(w) != nil {
		t.Fatal("cookie set on failed login")
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success || body.Message != "Invalid credentials" {
		t.Errorf("body = %+v", body)
	}
}

func TestMeReportsSession(t *testing.T) {
	r := newTestRouter(t)

	// no cookie
	w := doJSON(t, r, http.MethodGet, "/auth/me", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Authenticated bool `json:"authenticated"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Authenticated {
		t.Fatal("authenticated without cookie")
	}

	// valid cookie
	login := doJSON(t, r, http.MethodPost, "/auth/login", `{"username":"admin","password":"admin123"}`, nil)
	w = doJSON(t, r, http.MethodGet, "/auth/me", "", sessionCookie(login))
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Authenticated {
		t.Fatal("not authenticated with valid cookie")
	}

	// garbage cookie still answers 200 with authenticated=false
	w = doJSON(t, r, http.MethodGet, "/auth/me", "", &http.Cookie{Name: middleware.CookieName, Value: "garbage"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Authenticated {
		t.Fatal("authenticated with garbage cookie")
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/logout", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	c := sessionCookie(w)
	if c == nil {
		t.Fatal("no clearing cookie")
	}
	if c.Value != "" || c.MaxAge >= 0 {
		t.Errorf("cookie not cleared: value=%q maxAge=%d", c.Value, c.MaxAge)
	}
}

func TestChangePasswordRequiresAuth(t *testing.T) {
	r := newTestRouter(t)

	// no token
	w := doJSON(t, r, http.MethodPost, "/auth/change-password",
		`{"currentPassword":"a","newPassword":"bbbbbb"}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	// invalid token
	w = doJSON(t, r, http.MethodPost, "/auth/change-password",
		`{"currentPassword":"a","newPassword":"bbbbbb"}`,
		&http.Cookie{Name: middleware.CookieName, Value: "garbage"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}

	// env-backed session is refused
	login := doJSON(t, r, http.MethodPost, "/auth/login", `{"username":"admin","password":"admin123"}`, nil)
	w = doJSON(t, r, http.MethodPost, "/auth/change-password",
		`{"currentPassword":"admin123","newPassword":"bbbbbb"}`, sessionCookie(login))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
}

package commandcenter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jasri-space/core/internal/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	r := gin.New()
	api := r.Group("/api")
	passthrough := func(c *gin.Context) { c.Next() }
	NewHandler(NewService(db)).RegisterRoutes(api, passthrough)
	return r
}

func postImages(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/command-center", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetEmpty(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/command-center", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Images []string `json:"images"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Images == nil || len(body.Images) != 0 {
		t.Fatalf("images = %v, want []", body.Images)
	}
}

func TestSetWithinLimit(t *testing.T) {
	r := newTestRouter(t)

	w := postImages(t, r, `{"images":["/uploads/a.jpg","/uploads/b.jpg","/uploads/c.jpg"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	// replace wholesale with a smaller set
	w = postImages(t, r, `{"images":["/uploads/d.jpg"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/command-center", nil)
	get := httptest.NewRecorder()
	r.ServeHTTP(get, req)
	var body struct {
		Images []string `json:"images"`
	}
	if err := json.Unmarshal(get.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Images) != 1 || body.Images[0] != "/uploads/d.jpg" {
		t.Fatalf("images = %v", body.Images)
	}
}

func TestSetOverLimit(t *testing.T) {
	r := newTestRouter(t)

	w := postImages(t, r, `{"images":["a","b","c","d"]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Maximum 3 images") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestSetRejectsNonArray(t *testing.T) {
	r := newTestRouter(t)

	w := postImages(t, r, `{"images":"not-an-array"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

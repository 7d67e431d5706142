package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-admin/internal/config"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(cfg *config.Config, roles ...string) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger())
	g := r.Group("/", AuthMiddleware(cfg))
	if len(roles) > 0 {
		g.Use(RequireRole(roles...))
	}
	g.GET("/who", func(c *gin.Context) {
		var barber uint
		if id := BarberID(c); id != nil {
			barber = *id
		}
		c.JSON(http.StatusOK, gin.H{
			"user":   *UserID(c),
			"name":   UserName(c),
			"role":   Role(c),
			"barber": barber,
		})
	})
	return r
}

func bearer(t *testing.T, secret string, u *models.User) string {
	t.Helper()
	tok, err := IssueToken(secret, u)
	if err != nil {
		t.Fatal(err)
	}
	return "Bearer " + tok
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s3cret"}
	barberID := uint(7)
	barber := &models.User{ID: 3, Name: "Ali", Role: RoleBarber, BarberID: &barberID}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"wrong secret", bearer(t, "other", barber), http.StatusUnauthorized},
		{"valid", bearer(t, "s3cret", barber), http.StatusOK},
	}

	r := protectedRouter(cfg)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/who", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
			}
			if rec.Header().Get(HeaderRequestID) == "" {
				t.Fatal("missing request id header")
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s3cret"}
	r := protectedRouter(cfg, RoleAdmin)

	for _, tt := range []struct {
		role string
		want int
	}{
		{RoleAdmin, http.StatusOK},
		{RoleBarber, http.StatusForbidden},
	} {
		req := httptest.NewRequest(http.MethodGet, "/who", nil)
		req.Header.Set("Authorization", bearer(t, "s3cret", &models.User{ID: 1, Role: tt.role}))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != tt.want {
			t.Fatalf("role=%s status=%d", tt.role, rec.Code)
		}
	}
}

func TestRequestIDIsPropagated(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextRequestID)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Body.String() != "abc-123" || rec.Header().Get(HeaderRequestID) != "abc-123" {
		t.Fatalf("body=%q header=%q", rec.Body.String(), rec.Header().Get(HeaderRequestID))
	}
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status=%d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "https://admin.example.com" {
		t.Fatal("origin not echoed")
	}
}

func TestCORSAllowList(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware("https://admin.example.com/", " "))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		origin string
		want   string
	}{
		{"https://admin.example.com", "https://admin.example.com"},
		{"https://evil.example.com", ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", tt.origin)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
			t.Errorf("origin %s: allow=%q, want %q", tt.origin, got, tt.want)
		}
	}
}

func TestMetricsCountsRoute(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
}
